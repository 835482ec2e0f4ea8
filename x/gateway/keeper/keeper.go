package keeper

import (
	"context"
	"fmt"
	"sync"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/veritas-chain/veritas/x/gateway/types"
)

// Keeper of the gateway store
type Keeper struct {
	storeKey      storetypes.StoreKey
	cdc           codec.BinaryCodec
	bankKeeper    types.BankKeeper
	accountKeeper types.AccountKeeper
	registry      types.VerifierRegistry
	router        types.CallbackRouter
	vault         types.FeeVault
	authority     string

	metrics *GatewayMetrics

	// callMu guards the transient verified-call slot used while a call-mode
	// fulfillment is executing its callback. The slot never outlives a single
	// fulfillment; the in-flight marker doubles as the reentrancy guard.
	callMu     sync.Mutex
	fulfilling bool
	call       *verifiedCall
}

type kvStoreProvider interface {
	KVStore(key storetypes.StoreKey) storetypes.KVStore
}

// NewKeeper creates a new gateway Keeper instance. The vault may be nil, in
// which case collected fees remain escrowed in the module fee pool account.
func NewKeeper(
	cdc codec.BinaryCodec,
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	accountKeeper types.AccountKeeper,
	registry types.VerifierRegistry,
	router types.CallbackRouter,
	vault types.FeeVault,
	authority string,
) *Keeper {
	return &Keeper{
		storeKey:      key,
		cdc:           cdc,
		bankKeeper:    bankKeeper,
		accountKeeper: accountKeeper,
		registry:      registry,
		router:        router,
		vault:         vault,
		authority:     authority,
		metrics:       NewGatewayMetrics(),
	}
}

// getStore returns the KVStore for the gateway module
func (k *Keeper) getStore(ctx context.Context) storetypes.KVStore {
	if provider, ok := ctx.(kvStoreProvider); ok {
		return provider.KVStore(k.storeKey)
	}

	unwrapped := sdk.UnwrapSDKContext(ctx)
	return unwrapped.KVStore(k.storeKey)
}

// Logger returns a module-specific logger.
func (k *Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// GetAuthority returns the account permitted to update module parameters.
func (k *Keeper) GetAuthority() string {
	return k.authority
}

// FeePoolAddress returns the module account escrowing request payments.
func (k *Keeper) FeePoolAddress() sdk.AccAddress {
	return k.accountKeeper.GetModuleAddress(types.FeePoolName)
}
