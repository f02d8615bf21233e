package types

// BridgeStep is the user-facing position in the bridge flow. It is driven
// by, but distinct from, TransferStatus: a transfer keeps its own lifecycle
// while the step tracks what the connected client is currently doing.
type BridgeStep string

const (
	StepInitial        BridgeStep = "INITIAL"
	StepSubmitting     BridgeStep = "SUBMITTING"
	StepPendingConfirm BridgeStep = "PENDING_CONFIRM"
	StepCollectSelect  BridgeStep = "COLLECT_SELECTED"
	StepCollecting     BridgeStep = "COLLECTING"
	StepSuccess        BridgeStep = "SUCCESS"
)

func (s BridgeStep) ToString() string {
	return string(s)
}
