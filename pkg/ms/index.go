package ms

import (
	"github.com/openseries/metastock/pkg/codec"
)

// indexFile adapts a RecordReader into a SymbolIndex. Both index
// layouts name their fields identically, so one adapter serves both.
type indexFile struct {
	rr *RecordReader
}

func (f *indexFile) Count() int {
	return f.rr.Count()
}

func (f *indexFile) Read(i int) (SymbolMetadata, error) {
	rec, err := f.rr.At(i)
	if err != nil {
		return SymbolMetadata{}, err
	}
	return metadataFrom(rec), nil
}

func (f *indexFile) Next() (SymbolMetadata, error) {
	rec, err := f.rr.Next()
	if err != nil {
		return SymbolMetadata{}, err
	}
	return metadataFrom(rec), nil
}

func (f *indexFile) Rewind() error {
	return f.rr.Rewind()
}

func (f *indexFile) Close() error {
	return f.rr.Close()
}

func metadataFrom(rec codec.Record) SymbolMetadata {
	return SymbolMetadata{
		FileNumber: uint16(rec["filenum"].Uint()),
		Symbol:     rec["symbol"].String(),
		Name:       rec["name"].String(),
		FirstDate:  rec["first_date"].Date(),
		LastDate:   rec["last_date"].Date(),
	}
}

// EMasterFile reads the mandatory legacy index.
type EMasterFile struct {
	indexFile
}

// OpenEMaster opens a legacy index file.
func OpenEMaster(path string) (*EMasterFile, error) {
	rr, err := OpenRecordFile(path, codec.EMaster)
	if err != nil {
		return nil, err
	}
	return &EMasterFile{indexFile{rr: rr}}, nil
}

// XMasterFile reads the optional extended index.
type XMasterFile struct {
	indexFile
}

// OpenXMaster opens an extended index file.
func OpenXMaster(path string) (*XMasterFile, error) {
	rr, err := OpenRecordFile(path, codec.XMaster)
	if err != nil {
		return nil, err
	}
	return &XMasterFile{indexFile{rr: rr}}, nil
}
