package pdb

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/gtank/blake2/blake2b"
)

// Serialization format (spec §4.9): a magic number, a version byte, and a
// sequence of length-prefixed byte tables. Round-trip fidelity is the only
// contract; interoperability with the original Rust format is explicitly
// not required.
const (
	magic         = "CUBEPDB1"
	formatVersion = 1
	checksumSize  = 32
)

// checksum returns the BLAKE2b-256 digest of a table's kind tag and raw
// bytes, appended after every table so LoadTable/LoadKorf can detect the
// "corrupted PDB" error category of spec §7 instead of silently handing
// back truncated or bit-flipped distances.
func checksum(kind uint8, raw []byte) []byte {
	d, err := blake2b.NewDigest(nil, nil, nil, checksumSize)
	if err != nil {
		panic(err)
	}
	d.Write([]byte{kind})
	d.Write(raw)
	return d.Sum(nil)
}

const (
	KindCorners = iota
	KindLowerMiddles
	KindUpperMiddles
)

// SaveTable writes a single PDB table to path, tagged with its encoder
// kind so LoadTable can sanity-check it against the encoder the caller
// expects.
func SaveTable(path string, kind int, table []OptionU8) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	if err := writeTable(w, kind, table); err != nil {
		return err
	}
	return w.Flush()
}

func writeTable(w io.Writer, kind int, table []OptionU8) error {
	if _, err := io.WriteString(w, magic); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint8(formatVersion)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint8(kind)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint64(len(table))); err != nil {
		return err
	}
	raw := make([]byte, len(table))
	for i, v := range table {
		raw[i] = byte(v)
	}
	if _, err := w.Write(raw); err != nil {
		return err
	}
	_, err := w.Write(checksum(uint8(kind), raw))
	return err
}

// LoadTable reads a single PDB table previously written by SaveTable.
// Corruption (magic mismatch, unknown version, a length that disagrees
// with the bytes actually present) is a fatal configuration error per
// spec §7: it is reported, never silently patched.
func LoadTable(path string) (kind int, table []OptionU8, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, nil, err
	}
	defer f.Close()
	return readTable(bufio.NewReader(f))
}

func readTable(r io.Reader) (kind int, table []OptionU8, err error) {
	gotMagic := make([]byte, len(magic))
	if _, err := io.ReadFull(r, gotMagic); err != nil {
		return 0, nil, fmt.Errorf("pdb: reading magic: %w", err)
	}
	if string(gotMagic) != magic {
		return 0, nil, fmt.Errorf("pdb: bad magic %q, not a cube PDB file", gotMagic)
	}
	var version, kindByte uint8
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return 0, nil, err
	}
	if version != formatVersion {
		return 0, nil, fmt.Errorf("pdb: unsupported format version %d", version)
	}
	if err := binary.Read(r, binary.LittleEndian, &kindByte); err != nil {
		return 0, nil, err
	}
	var length uint64
	if err := binary.Read(r, binary.LittleEndian, &length); err != nil {
		return 0, nil, err
	}
	raw := make([]byte, length)
	if _, err := io.ReadFull(r, raw); err != nil {
		return 0, nil, fmt.Errorf("pdb: table length %d disagrees with bytes present: %w", length, err)
	}
	gotSum := make([]byte, checksumSize)
	if _, err := io.ReadFull(r, gotSum); err != nil {
		return 0, nil, fmt.Errorf("pdb: reading checksum: %w", err)
	}
	if !bytes.Equal(gotSum, checksum(kindByte, raw)) {
		return 0, nil, fmt.Errorf("pdb: checksum mismatch, table is corrupted")
	}
	table = make([]OptionU8, length)
	for i, b := range raw {
		table[i] = OptionU8(b)
	}
	return int(kindByte), table, nil
}

// SaveKorf writes the combined Korf heuristic file referencing all three
// tables: the three length-prefixed blobs back to back, so loading the
// combined file never needs to resolve sibling paths.
func SaveKorf(path string, corners, lower, upper []OptionU8) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	for kind, table := range map[int][]OptionU8{
		KindCorners:      corners,
		KindLowerMiddles: lower,
		KindUpperMiddles: upper,
	} {
		if err := writeTable(w, kind, table); err != nil {
			return err
		}
	}
	return w.Flush()
}

// LoadKorf reads a combined Korf heuristic file, returning the three
// tables indexed by their kind constant.
func LoadKorf(path string) (corners, lower, upper []OptionU8, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, nil, err
	}
	defer f.Close()
	r := bufio.NewReader(f)
	tables := make(map[int][]OptionU8, 3)
	for i := 0; i < 3; i++ {
		kind, table, err := readTable(r)
		if err != nil {
			return nil, nil, nil, err
		}
		tables[kind] = table
	}
	corners, ok1 := tables[KindCorners]
	lower, ok2 := tables[KindLowerMiddles]
	upper, ok3 := tables[KindUpperMiddles]
	if !ok1 || !ok2 || !ok3 {
		return nil, nil, nil, fmt.Errorf("pdb: korf file missing one of the three tables")
	}
	return corners, lower, upper, nil
}
