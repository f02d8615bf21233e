package evm

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/beemeeupnow/bridge-api-service/internal/chains"
	"github.com/beemeeupnow/bridge-api-service/internal/config"
	"github.com/beemeeupnow/bridge-api-service/internal/db/model"
	"github.com/beemeeupnow/bridge-api-service/internal/types"
)

// Minimal surface of the bridge contract: a deposit entrypoint on the
// source side, a claim entrypoint on the destination side, and the event
// the destination contract emits when a transfer is claimed.
const bridgeContractABI = `[
	{"type":"function","name":"deposit","stateMutability":"payable","inputs":[{"name":"toChainId","type":"uint256"},{"name":"asset","type":"address"},{"name":"amount","type":"uint256"},{"name":"recipient","type":"address"}],"outputs":[]},
	{"type":"function","name":"claim","stateMutability":"nonpayable","inputs":[{"name":"sourceTxHash","type":"bytes32"}],"outputs":[]},
	{"type":"event","name":"Claimed","anonymous":false,"inputs":[{"name":"sourceTxHash","type":"bytes32","indexed":true},{"name":"recipient","type":"address","indexed":true},{"name":"amount","type":"uint256","indexed":false}]}
]`

const claimGasLimit = 200000

// droppedTxGrace is how long a source transaction may stay invisible
// (no receipt, not in the pool) before it is declared dropped. Right
// after broadcast the tx can be invisible to a node through propagation
// lag or a pool lost to a restart.
const droppedTxGrace = 10 * time.Minute

// rpcClient is the slice of ethclient.Client the provider uses,
// extracted so the status paths can be tested against a stub node.
type rpcClient interface {
	ChainID(ctx context.Context) (*big.Int, error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*ethtypes.Receipt, error)
	TransactionByHash(ctx context.Context, hash common.Hash) (*ethtypes.Transaction, bool, error)
	BlockNumber(ctx context.Context) (uint64, error)
	FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]ethtypes.Log, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	SendTransaction(ctx context.Context, tx *ethtypes.Transaction) error
}

var _ rpcClient = (*ethclient.Client)(nil)

// Provider implements chains.StatusProvider over a single EVM network.
type Provider struct {
	chainId       uint64
	client        rpcClient
	bridgeAddress common.Address
	confirmations uint64
	contractAbi   abi.ABI
	signerKey     *ecdsa.PrivateKey
	signerAddress common.Address
}

var _ chains.StatusProvider = (*Provider)(nil)

func New(cfg config.ChainConfig, signerKeyHex string) (*Provider, error) {
	client, err := ethclient.Dial(cfg.RpcUrl)
	if err != nil {
		return nil, fmt.Errorf("failed to dial rpc for chain %d: %w", cfg.ChainId, err)
	}

	contractAbi, err := abi.JSON(strings.NewReader(bridgeContractABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse bridge contract abi: %w", err)
	}

	signerKey, err := crypto.HexToECDSA(signerKeyHex)
	if err != nil {
		return nil, fmt.Errorf("failed to parse signer key: %w", err)
	}

	confirmations := cfg.Confirmations
	if confirmations == 0 {
		confirmations = 1
	}

	return &Provider{
		chainId:       cfg.ChainId,
		client:        client,
		bridgeAddress: common.HexToAddress(cfg.BridgeAddress),
		confirmations: confirmations,
		contractAbi:   contractAbi,
		signerKey:     signerKey,
		signerAddress: crypto.PubkeyToAddress(signerKey.PublicKey),
	}, nil
}

func (p *Provider) ActiveNetwork(ctx context.Context) (uint64, error) {
	id, err := p.client.ChainID(ctx)
	if err != nil {
		return 0, err
	}
	return id.Uint64(), nil
}

func (p *Provider) BroadcastTransfer(ctx context.Context, req *chains.BroadcastRequest) (string, error) {
	asset := common.Address{}
	value := big.NewInt(0)
	if req.AssetAddress == "" {
		// Native asset rides along as call value.
		value = req.Value
	} else {
		asset = common.HexToAddress(req.AssetAddress)
	}

	data, err := p.contractAbi.Pack(
		"deposit",
		new(big.Int).SetUint64(req.ToChainId),
		asset,
		req.Value,
		common.HexToAddress(req.OwnerAddress),
	)
	if err != nil {
		return "", fmt.Errorf("failed to pack deposit call: %w", err)
	}

	signed, err := p.sendTransaction(ctx, value, data)
	if err != nil {
		return "", err
	}
	return signed.Hash().Hex(), nil
}

func (p *Provider) Claim(ctx context.Context, transfer *model.TransferDocument) (string, error) {
	data, err := p.contractAbi.Pack("claim", common.HexToHash(transfer.SourceTxHash))
	if err != nil {
		return "", fmt.Errorf("failed to pack claim call: %w", err)
	}

	signed, err := p.sendTransaction(ctx, big.NewInt(0), data)
	if err != nil {
		return "", err
	}
	return signed.Hash().Hex(), nil
}

func (p *Provider) sendTransaction(ctx context.Context, value *big.Int, data []byte) (*ethtypes.Transaction, error) {
	nonce, err := p.client.PendingNonceAt(ctx, p.signerAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to get nonce: %w", err)
	}

	gasPrice, err := p.client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get suggested gas price: %w", err)
	}

	tx := ethtypes.NewTransaction(nonce, p.bridgeAddress, value, claimGasLimit, gasPrice, data)
	signed, err := ethtypes.SignTx(tx, ethtypes.LatestSignerForChainID(new(big.Int).SetUint64(p.chainId)), p.signerKey)
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := p.client.SendTransaction(ctx, signed); err != nil {
		return nil, err
	}
	return signed, nil
}

// QueryStatus reports the transfer's status as visible from this chain.
// Bound to the source chain it answers finality questions; bound to the
// destination chain it answers whether the transfer was already claimed.
func (p *Provider) QueryStatus(ctx context.Context, transfer *model.TransferDocument) (*chains.RemoteStatusResult, error) {
	switch p.chainId {
	case transfer.FromChainId:
		return p.querySourceStatus(ctx, transfer)
	case transfer.ToChainId:
		return p.queryDestinationStatus(ctx, transfer)
	default:
		return nil, fmt.Errorf("transfer %s does not involve chain %d", transfer.SourceTxHash, p.chainId)
	}
}

func (p *Provider) querySourceStatus(ctx context.Context, transfer *model.TransferDocument) (*chains.RemoteStatusResult, error) {
	txHash := common.HexToHash(transfer.SourceTxHash)

	receipt, err := p.client.TransactionReceipt(ctx, txHash)
	if errors.Is(err, ethereum.NotFound) {
		// Not mined yet, or dropped from the pool entirely.
		_, _, txErr := p.client.TransactionByHash(ctx, txHash)
		if errors.Is(txErr, ethereum.NotFound) {
			if time.Since(time.Unix(transfer.SubmittedAt, 0)) < droppedTxGrace {
				return &chains.RemoteStatusResult{
					Status:        types.RemotePending,
					PendingReason: "awaiting inclusion in a block",
				}, nil
			}
			return &chains.RemoteStatusResult{Status: types.RemoteReverted}, nil
		}
		if txErr != nil {
			return nil, txErr
		}
		return &chains.RemoteStatusResult{
			Status:        types.RemotePending,
			PendingReason: "awaiting inclusion in a block",
		}, nil
	}
	if err != nil {
		return nil, err
	}

	if receipt.Status == ethtypes.ReceiptStatusFailed {
		return &chains.RemoteStatusResult{Status: types.RemoteReverted}, nil
	}

	head, err := p.client.BlockNumber(ctx)
	if err != nil {
		return nil, err
	}
	if head < receipt.BlockNumber.Uint64() {
		// A lagging node can report a head behind the receipt's block.
		return &chains.RemoteStatusResult{
			Status:        types.RemotePending,
			PendingReason: "awaiting confirmations",
		}, nil
	}
	depth := head - receipt.BlockNumber.Uint64() + 1
	if depth < p.confirmations {
		return &chains.RemoteStatusResult{
			Status:        types.RemotePending,
			PendingReason: "awaiting confirmations",
		}, nil
	}

	return &chains.RemoteStatusResult{Status: types.RemoteRedeemable}, nil
}

func (p *Provider) queryDestinationStatus(ctx context.Context, transfer *model.TransferDocument) (*chains.RemoteStatusResult, error) {
	claimedTopic := p.contractAbi.Events["Claimed"].ID

	logs, err := p.client.FilterLogs(ctx, ethereum.FilterQuery{
		FromBlock: big.NewInt(0),
		Addresses: []common.Address{p.bridgeAddress},
		Topics: [][]common.Hash{
			{claimedTopic},
			{common.HexToHash(transfer.SourceTxHash)},
		},
	})
	if err != nil {
		return nil, err
	}

	if len(logs) > 0 {
		// Claimed, possibly by another client out-of-band.
		return &chains.RemoteStatusResult{
			Status:            types.RemoteConfirmed,
			DestinationTxHash: logs[len(logs)-1].TxHash.Hex(),
		}, nil
	}

	return &chains.RemoteStatusResult{Status: types.RemoteRedeemable}, nil
}
