package dataset

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/hupe1980/clustergo/internal/mmap"
)

// Binary matrix file layout (little-endian):
//
//	[magic 4B "CGDM"][version uint16][reserved uint16][n uint32][n*n float64]
const (
	matrixMagic      = "CGDM"
	matrixVersion    = 1
	matrixHeaderSize = 12
)

// WriteMatrix writes m in the binary matrix format to w. The matrix is
// validated the same way FromMatrix validates it.
func WriteMatrix(w io.Writer, m [][]float64) error {
	if len(m) == 0 {
		return ErrEmptyDataset
	}
	if err := validateMatrix(m); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)

	header := make([]byte, matrixHeaderSize)
	copy(header[0:4], matrixMagic)
	binary.LittleEndian.PutUint16(header[4:6], matrixVersion)
	binary.LittleEndian.PutUint32(header[8:12], uint32(len(m)))
	if _, err := bw.Write(header); err != nil {
		return err
	}

	var buf [8]byte
	for _, row := range m {
		for _, v := range row {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			if _, err := bw.Write(buf[:]); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// SaveMatrixFile writes m to path in the binary matrix format.
func SaveMatrixFile(path string, m [][]float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteMatrix(f, m); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// OpenMatrixFile memory-maps the matrix file at path and returns a
// distance-matrix dataset backed by the mapping. Lookups are zero-copy;
// Close releases the mapping.
func OpenMatrixFile(path string) (*Dataset, error) {
	f, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}

	mv, err := newMmapMatrix(f.Data)
	if err != nil {
		f.Close()
		return nil, err
	}

	return &Dataset{kind: KindDistanceMatrix, matrix: mv, closer: f}, nil
}

type mmapMatrix struct {
	data []byte // entry region, header stripped
	n    int
}

func newMmapMatrix(data []byte) (*mmapMatrix, error) {
	if len(data) < matrixHeaderSize {
		return nil, errors.New("matrix file too small for header")
	}
	if string(data[0:4]) != matrixMagic {
		return nil, errors.New("not a matrix file: bad magic")
	}
	if v := binary.LittleEndian.Uint16(data[4:6]); v != matrixVersion {
		return nil, fmt.Errorf("unsupported matrix file version: %d", v)
	}

	n := int(binary.LittleEndian.Uint32(data[8:12]))
	if n == 0 {
		return nil, ErrEmptyDataset
	}
	want := matrixHeaderSize + n*n*8
	if len(data) != want {
		return nil, &ErrDimensionMismatch{Rows: n, Cols: (len(data) - matrixHeaderSize) / (n * 8)}
	}

	return &mmapMatrix{data: data[matrixHeaderSize:], n: n}, nil
}

func (m *mmapMatrix) size() int { return m.n }

func (m *mmapMatrix) at(i, j int) float64 {
	off := (i*m.n + j) * 8
	return math.Float64frombits(binary.LittleEndian.Uint64(m.data[off:]))
}
