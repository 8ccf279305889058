package shamir

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/izouxv/goShamir/utils"
)

// MarshalShare serializes a share as two length-prefixed big-endian integers.
func MarshalShare(share *Share) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := utils.WriteVarBytes(buf, share.X.Bytes()); err != nil {
		return nil, err
	}
	if err := utils.WriteVarBytes(buf, share.Y.Bytes()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalShare deserializes a share written by MarshalShare.
func UnmarshalShare(data []byte) (*Share, error) {
	buf := bytes.NewBuffer(data)

	xBytes, _, err := utils.ReadVarBytes(buf)
	if err != nil {
		return nil, fmt.Errorf("failed to read X value: %w", err)
	}
	yBytes, _, err := utils.ReadVarBytes(buf)
	if err != nil {
		return nil, fmt.Errorf("failed to read Y value: %w", err)
	}
	if buf.Len() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrInvalidShare, buf.Len())
	}

	share := &Share{
		X: new(big.Int).SetBytes(xBytes),
		Y: new(big.Int).SetBytes(yBytes),
	}
	if share.X.Sign() == 0 {
		return nil, fmt.Errorf("%w: index must be at least 1", ErrInvalidShare)
	}
	return share, nil
}
