package utils

import (
	"math/big"
	"regexp"

	"github.com/ethereum/go-ethereum/common"
)

var txHashRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

// IsValidEvmAddress checks if the provided address is a valid EVM address.
func IsValidEvmAddress(address string) bool {
	return common.IsHexAddress(address)
}

// IsValidTxHash checks if the given string is a valid EVM transaction hash.
// Note: it does not check the actual content of the hash.
func IsValidTxHash(txHash string) bool {
	return txHashRegex.MatchString(txHash)
}

// ParseTransferValue parses a transfer amount given in base units as a
// decimal string. Amounts are exact integers end to end; floating point
// never enters the pipeline.
func ParseTransferValue(value string) (*big.Int, bool) {
	v, ok := new(big.Int).SetString(value, 10)
	if !ok || v.Sign() <= 0 {
		return nil, false
	}
	return v, true
}
