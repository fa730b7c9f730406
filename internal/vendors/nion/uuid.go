package nion

import (
	"fmt"
	"math/big"

	"github.com/google/uuid"
)

// fileNameAlphabet is the base-36 alphabet nionswift uses for data item
// file names, see nion/swift/model/Profile.py.
const fileNameAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890"

// encode renders the uuid's integer value in the given alphabet, least
// significant digit first.
func encode(id uuid.UUID, alphabet string) string {
	n := new(big.Int).SetBytes(id[:])
	base := big.NewInt(int64(len(alphabet)))
	mod := new(big.Int)

	var digits []byte
	for n.Sign() > 0 {
		n.DivMod(n, base, mod)
		digits = append(digits, alphabet[mod.Int64()])
	}

	return string(digits)
}

// DataItemFileName derives the on-disk file name stem nionswift uses for a
// data item from its uuid.
func DataItemFileName(dataItemUUID string) (string, error) {
	id, err := uuid.Parse(dataItemUUID)
	if err != nil {
		return "", fmt.Errorf("data item uuid: %w", err)
	}

	return "data_" + encode(id, fileNameAlphabet), nil
}
