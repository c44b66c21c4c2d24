package volume

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

const voxMagic = "VOX "

var ErrNotVox = errors.New("not a valid VOX file")

// VoxCell is one entry of an XYZI chunk. Index points into the file palette.
type VoxCell struct {
	X, Y, Z, Index byte
}

// VoxModel is a MagicaVoxel model. MagicaVoxel is z-up.
type VoxModel struct {
	Size  [3]uint32
	Cells []VoxCell
}

type VoxFile struct {
	Version int
	Models  []VoxModel
}

func LoadVox(path string) (*VoxFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	vf, err := DecodeVox(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return vf, nil
}

// DecodeVox reads the SIZE/XYZI/PACK chunks of a .vox stream. Palette and
// material chunks are skipped; voxel ids come from palette indices.
func DecodeVox(r io.Reader) (*VoxFile, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, err
	}
	if string(magic[:]) != voxMagic {
		return nil, ErrNotVox
	}
	var version int32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, err
	}
	vf := &VoxFile{Version: int(version)}

	// SIZE opens a model and the XYZI after it fills it
	for {
		var hdr struct {
			ID       [4]byte
			Size     int32
			Children int32
		}
		if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		if hdr.Size < 0 {
			return nil, fmt.Errorf("chunk %q: negative size", hdr.ID[:])
		}
		data := make([]byte, hdr.Size)
		if _, err := io.ReadFull(r, data); err != nil {
			return nil, err
		}

		switch string(hdr.ID[:]) {
		case "SIZE":
			if len(data) < 12 {
				return nil, errors.New("SIZE chunk too small")
			}
			vf.Models = append(vf.Models, VoxModel{Size: [3]uint32{
				binary.LittleEndian.Uint32(data[0:4]),
				binary.LittleEndian.Uint32(data[4:8]),
				binary.LittleEndian.Uint32(data[8:12]),
			}})
		case "XYZI":
			if len(vf.Models) == 0 {
				return nil, errors.New("XYZI chunk before SIZE")
			}
			if len(data) < 4 {
				return nil, errors.New("XYZI chunk too small")
			}
			n := int(binary.LittleEndian.Uint32(data[:4]))
			if 4+n*4 > len(data) {
				return nil, errors.New("XYZI chunk data overflow")
			}
			m := &vf.Models[len(vf.Models)-1]
			m.Cells = make([]VoxCell, n)
			for i := range m.Cells {
				o := 4 + i*4
				m.Cells[i] = VoxCell{X: data[o], Y: data[o+1], Z: data[o+2], Index: data[o+3]}
			}
		}
	}
	return vf, nil
}

// VoxelForIndex folds a palette index (1-255) onto the voxel ids 1-9.
func VoxelForIndex(idx byte) Voxel {
	if idx == 0 {
		return Empty
	}
	return Voxel((int(idx)-1)%int(MaxVoxel) + 1)
}

// Stamp writes the model into g with its lower corner at offset, turning
// MagicaVoxel's z-up into the grid's y-up. Returns the cells written.
func (m VoxModel) Stamp(g *Grid, offset [3]int) int {
	n := 0
	for _, c := range m.Cells {
		x, y, z := offset[0]+int(c.X), offset[1]+int(c.Z), offset[2]+int(c.Y)
		if !g.inBounds(x, y, z) {
			continue
		}
		g.Set(x, y, z, VoxelForIndex(c.Index))
		n++
	}
	return n
}
