package types

import "fmt"

type TransferStatus string

const (
	Pending    TransferStatus = "PENDING"
	Redeemable TransferStatus = "REDEEMABLE"
	Collecting TransferStatus = "COLLECTING"
	Confirmed  TransferStatus = "CONFIRMED"
	Failed     TransferStatus = "FAILED"
)

func (s TransferStatus) ToString() string {
	return string(s)
}

// IsTerminal reports whether the status admits no further transitions.
func (s TransferStatus) IsTerminal() bool {
	return s == Confirmed || s == Failed
}

func FromStringToTransferStatus(s string) (TransferStatus, error) {
	switch s {
	case "PENDING":
		return Pending, nil
	case "REDEEMABLE":
		return Redeemable, nil
	case "COLLECTING":
		return Collecting, nil
	case "CONFIRMED":
		return Confirmed, nil
	case "FAILED":
		return Failed, nil
	default:
		return "", fmt.Errorf("invalid transfer status: %s", s)
	}
}
