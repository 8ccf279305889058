package document

import (
	"bytes"
	"fmt"

	"github.com/izouxv/goShamir/shamir"
	"github.com/izouxv/goShamir/utils"
)

// MaxBundleShares bounds the share count accepted from a bundle.
const MaxBundleShares = 1 << 16

var bundleMagic = []byte("SSB1")

// EncodeBundle serializes a document as a binary bundle: magic, varint k,
// varint share count, then each share as varbytes.
func EncodeBundle(doc *Document) ([]byte, error) {
	if doc.K < 1 {
		return nil, ErrInvalidThreshold
	}
	buf := bytes.NewBuffer(nil)
	buf.Write(bundleMagic)
	if err := utils.WriteVarInt(buf, int64(doc.K)); err != nil {
		return nil, err
	}
	if err := utils.WriteVarInt(buf, int64(len(doc.Shares))); err != nil {
		return nil, err
	}
	for _, share := range doc.Shares {
		data, err := shamir.MarshalShare(share)
		if err != nil {
			return nil, err
		}
		if err := utils.WriteVarBytes(buf, data); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func parseBundle(data []byte) (*Document, error) {
	buf := bytes.NewBuffer(data[len(bundleMagic):])

	k, _, err := utils.ReadVarInt(buf)
	if err != nil {
		return nil, fmt.Errorf("%w: reading k: %v", ErrMalformed, err)
	}
	if k < 1 || int64(int(k)) != k {
		return nil, ErrInvalidThreshold
	}
	count, _, err := utils.ReadVarInt(buf)
	if err != nil {
		return nil, fmt.Errorf("%w: reading share count: %v", ErrMalformed, err)
	}
	if count < 0 || count > MaxBundleShares {
		return nil, fmt.Errorf("%w: share count %d", ErrMalformed, count)
	}

	doc := &Document{K: int(k), N: int(count), Shares: make([]*shamir.Share, 0, count)}
	seen := make(map[string]bool)
	for i := int64(0); i < count; i++ {
		raw, _, err := utils.ReadVarBytes(buf)
		if err != nil {
			return nil, fmt.Errorf("%w: share %d: %v", ErrMalformed, i, err)
		}
		share, err := shamir.UnmarshalShare(raw)
		if err != nil {
			return nil, fmt.Errorf("share %d: %w", i, err)
		}
		if seen[share.X.String()] {
			return nil, fmt.Errorf("share %d: %w: duplicate index %s", i, shamir.ErrInvalidShare, share.X)
		}
		seen[share.X.String()] = true
		doc.Shares = append(doc.Shares, share)
	}
	if buf.Len() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrMalformed, buf.Len())
	}
	shamir.SortShares(doc.Shares)
	return doc, nil
}
