package services

import (
	"sort"

	"github.com/beemeeupnow/bridge-api-service/internal/types"
)

// RecentTransfers orders transfers most recently submitted first. Ties on
// submission time break on the source tx hash so the order is stable across
// calls. The input slice is not modified.
func RecentTransfers(transfers []TransferPublic) []TransferPublic {
	ordered := make([]TransferPublic, len(transfers))
	copy(ordered, transfers)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].SubmittedAt != ordered[j].SubmittedAt {
			return ordered[i].SubmittedAt > ordered[j].SubmittedAt
		}
		return ordered[i].SourceTxHash < ordered[j].SourceTxHash
	})
	return ordered
}

// CollectableTransfers keeps only redeemable transfers, most recent first.
func CollectableTransfers(transfers []TransferPublic) []TransferPublic {
	collectable := make([]TransferPublic, 0, len(transfers))
	for _, t := range transfers {
		if t.Status == types.Redeemable.ToString() {
			collectable = append(collectable, t)
		}
	}
	return RecentTransfers(collectable)
}

// ResolvedWithin drops transfers that reached a terminal state before the
// cutoff. In-flight transfers have no resolution time and always pass.
func ResolvedWithin(transfers []TransferPublic, cutoff int64) []TransferPublic {
	recent := make([]TransferPublic, 0, len(transfers))
	for _, t := range transfers {
		if t.ResolvedAt == 0 || t.ResolvedAt >= cutoff {
			recent = append(recent, t)
		}
	}
	return recent
}
