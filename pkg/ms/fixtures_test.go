package ms

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// msbin packs an IEEE single into the legacy MBF byte layout, the
// inverse of codec.DecodeMSBin, for building fixtures.
func msbin(f float32) []byte {
	if f == 0 {
		return []byte{0, 0, 0, 0}
	}
	bits := math.Float32bits(f)
	high := uint16(bits >> 16)
	exp := high >> 7 & 0xFF
	word := (exp+2)<<8 | (high&0x8000)>>8 | high&0x7F
	return []byte{byte(bits), byte(bits >> 8), byte(word), byte(word >> 8)}
}

func emDate(year, month, day int) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, math.Float32bits(float32((year-1900)*10000+month*100+day)))
	return b
}

func xmDate(year, month, day int) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, uint32(year*10000+month*100+day))
	return b
}

type symbolFixture struct {
	filenum uint16
	symbol  string
	name    string
	first   [3]int // year, month, day; zero means no date on disk
	last    [3]int
}

func writeEMaster(t *testing.T, dir string, syms []symbolFixture) {
	t.Helper()
	buf := make([]byte, 192*(len(syms)+1))
	binary.LittleEndian.PutUint16(buf[0:], uint16(len(syms)))
	binary.LittleEndian.PutUint16(buf[2:], uint16(len(syms)))
	for i, s := range syms {
		rec := buf[192*(i+1):]
		rec[2] = byte(s.filenum)
		rec[6] = 7
		copy(rec[11:], s.symbol)
		copy(rec[32:], s.name)
		if s.first != [3]int{} {
			copy(rec[64:], emDate(s.first[0], s.first[1], s.first[2]))
		}
		if s.last != [3]int{} {
			copy(rec[72:], emDate(s.last[0], s.last[1], s.last[2]))
		}
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "emaster"), buf, 0644))
}

func writeXMaster(t *testing.T, dir string, syms []symbolFixture) {
	t.Helper()
	buf := make([]byte, 150*(len(syms)+1))
	binary.LittleEndian.PutUint16(buf[10:], uint16(len(syms)))
	for i, s := range syms {
		rec := buf[150*(i+1):]
		binary.LittleEndian.PutUint16(rec[65:], s.filenum)
		copy(rec[1:], s.symbol)
		copy(rec[16:], s.name)
		copy(rec[108:], xmDate(s.first[0], s.first[1], s.first[2]))
		copy(rec[116:], xmDate(s.last[0], s.last[1], s.last[2]))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "xmaster"), buf, 0644))
}

type barFixture struct {
	date                   [3]int
	o, h, l, c, volume, oi float32
}

func writePriceFile(t *testing.T, path string, bars []barFixture) {
	t.Helper()
	buf := make([]byte, 28*(len(bars)+1))
	// The format stores the count one greater than the true count.
	binary.LittleEndian.PutUint16(buf[2:], uint16(len(bars)+1))
	for i, b := range bars {
		rec := buf[28*(i+1):]
		copy(rec[0:], msbin(float32((b.date[0]-1900)*10000+b.date[1]*100+b.date[2])))
		copy(rec[4:], msbin(b.o))
		copy(rec[8:], msbin(b.h))
		copy(rec[12:], msbin(b.l))
		copy(rec[16:], msbin(b.c))
		copy(rec[20:], msbin(b.volume))
		copy(rec[24:], msbin(b.oi))
	}
	require.NoError(t, os.WriteFile(path, buf, 0644))
}

// threeBars is a small chronological series shared by tests.
func threeBars() []barFixture {
	return []barFixture{
		{date: [3]int{1982, 10, 15}, o: 101.5, h: 103.25, l: 100.75, c: 102, volume: 15000, oi: 120},
		{date: [3]int{1982, 10, 18}, o: 102, h: 104, l: 101.5, c: 103.5, volume: 18000, oi: 121},
		{date: [3]int{1982, 10, 19}, o: 103.5, h: 105, l: 103, c: 104.25, volume: 9000},
	}
}
