// Package codec decodes the fixed-offset binary structures of a
// Metastock database: the legacy EMASTER index, the extended XMASTER
// index, and the per-symbol price files.
//
// # Record Format
//
// Every file kind is laid out as [header][record]xN with fixed record
// lengths and fixed byte offsets per field:
//
//	EMASTER  header 192 bytes, record 192 bytes
//	XMASTER  header 150 bytes, record 150 bytes
//	price    header  28 bytes, record  28 bytes
//
// A RecordLayout maps field names to FieldSpecs (offset, length, kind)
// and decodes one raw record into a Record of tagged Values. The field
// kinds form a closed set: unsigned integers, fixed-width strings, the
// proprietary 4-byte float, and three date encodings.
//
// # Legacy Float
//
// Price and legacy-date fields use the Microsoft Binary Format (MBF)
// single-precision float, which predates IEEE-754. DecodeMSBin
// converts it bit-exactly by rebiasing the exponent word and
// reassembling an IEEE-754 single. An all-zero exponent word means "no
// value" and is surfaced as a null Value, never as 0.0 data.
//
// # Dates
//
// Three encodings exist. EMASTER dates are IEEE singles whose value is
// (year-1900)*10000 + month*100 + day; XMASTER dates are uint32 values
// whose decimal digits read YYYYMMDD; price-record dates use the
// EMASTER arithmetic over an MBF float. An invalid calendar date in
// the float encodings is "no value"; a malformed XMASTER date is a
// *FormatError.
//
// # Error Handling
//
// The format carries no checksums. Structural problems (short record,
// malformed date digits) return a *FormatError naming the field;
// absent values are represented by the null Value kind. Layouts whose
// field specs overflow the record length are programming errors and
// panic at construction.
package codec
