// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package mbquery

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	mbq "github.com/aws/aws-sdk-go-v2/service/managedblockchainquery"
	"github.com/aws/aws-sdk-go-v2/service/managedblockchainquery/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staranto/awsqgo/internal/pager"
)

type fakeMBQ struct {
	calls int
}

func (f *fakeMBQ) ListTransactions(_ context.Context, in *mbq.ListTransactionsInput, _ ...func(*mbq.Options)) (*mbq.ListTransactionsOutput, error) {
	f.calls++
	out := &mbq.ListTransactionsOutput{
		Transactions: []types.TransactionOutputItem{{TransactionHash: aws.String("0xabc"), Network: in.Network}},
	}
	// Always more data, so only the caller's options can stop the stream.
	out.NextToken = aws.String("t" + string(rune('0'+f.calls)))
	return out, nil
}

func (f *fakeMBQ) ListTokenBalances(_ context.Context, in *mbq.ListTokenBalancesInput, _ ...func(*mbq.Options)) (*mbq.ListTokenBalancesOutput, error) {
	return &mbq.ListTokenBalancesOutput{
		TokenBalances: []types.TokenBalance{{Balance: aws.String("42"), TokenIdentifier: &types.TokenIdentifier{Network: in.TokenFilter.Network}}},
	}, nil
}

func (f *fakeMBQ) ListAssetContracts(context.Context, *mbq.ListAssetContractsInput, ...func(*mbq.Options)) (*mbq.ListAssetContractsOutput, error) {
	return &mbq.ListAssetContractsOutput{}, nil
}

func TestTransactionsParams_Input(t *testing.T) {
	in := TransactionsParams{Address: "0x1", Network: "ethereum-mainnet"}.Input()
	assert.Equal(t, "0x1", aws.ToString(in.Address))
	assert.Equal(t, types.QueryNetworkEthereumMainnet, in.Network)
	assert.Nil(t, in.FromBlockchainInstant)
	assert.Nil(t, in.ToBlockchainInstant)
	assert.Nil(t, in.Sort)
	assert.Nil(t, in.ConfirmationStatusFilter)

	from := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	in = TransactionsParams{
		Address:      "0x1",
		Network:      "BITCOIN_MAINNET",
		From:         from,
		SortOrder:    "descending",
		Confirmation: []string{"final", "nonfinal"},
	}.Input()
	require.NotNil(t, in.FromBlockchainInstant)
	assert.Equal(t, from, aws.ToTime(in.FromBlockchainInstant.Time))
	require.NotNil(t, in.Sort)
	assert.Equal(t, types.SortOrderDescending, in.Sort.SortOrder)
	require.NotNil(t, in.ConfirmationStatusFilter)
	assert.Equal(t, []types.ConfirmationStatus{types.ConfirmationStatusFinal, types.ConfirmationStatusNonfinal}, in.ConfirmationStatusFilter.Include)
}

func TestTransactionsParams_InputIsIdempotent(t *testing.T) {
	p := TransactionsParams{Address: "0x1", Network: "ethereum-mainnet", To: time.Unix(1700000000, 0).UTC()}
	a, err := json.Marshal(p.Input())
	require.NoError(t, err)
	b, err := json.Marshal(p.Input())
	require.NoError(t, err)
	assert.JSONEq(t, string(a), string(b))
}

func TestBalancesParams_Input(t *testing.T) {
	in := BalancesParams{Network: "ethereum-sepolia-testnet"}.Input()
	require.NotNil(t, in.TokenFilter)
	assert.Equal(t, types.QueryNetworkEthereumSepoliaTestnet, in.TokenFilter.Network)
	assert.Nil(t, in.TokenFilter.ContractAddress)
	assert.Nil(t, in.OwnerFilter)

	in = BalancesParams{Network: "ethereum-mainnet", Owner: "0xowner"}.Input()
	require.NotNil(t, in.OwnerFilter)
	assert.Equal(t, "0xowner", aws.ToString(in.OwnerFilter.Address))
}

func TestContractsParams_Input(t *testing.T) {
	in := ContractsParams{Network: "ethereum-mainnet", TokenStandard: "erc20", Deployer: "0xd"}.Input()
	require.NotNil(t, in.ContractFilter)
	assert.Equal(t, types.QueryTokenStandardErc20, in.ContractFilter.TokenStandard)
	assert.Equal(t, "0xd", aws.ToString(in.ContractFilter.DeployerAddress))
}

func TestTransactions_NoPaginateReturnsCursor(t *testing.T) {
	fake := &fakeMBQ{}
	items, res, err := pager.Collect(context.Background(), Transactions(fake),
		*TransactionsParams{Address: "0x1", Network: "ethereum-mainnet"}.Input(),
		pager.Options{NoPaginate: true})
	require.NoError(t, err)

	assert.Equal(t, 1, fake.calls)
	require.Len(t, items, 1)
	assert.Equal(t, types.QueryNetworkEthereumMainnet, items[0].Network)
	assert.True(t, res.Truncated())
	assert.Equal(t, "t1", res.NextToken)
}

func TestTransactions_MaxItemsStopsRequests(t *testing.T) {
	fake := &fakeMBQ{}
	items, res, err := pager.Collect(context.Background(), Transactions(fake),
		*TransactionsParams{Address: "0x1", Network: "ethereum-mainnet"}.Input(),
		pager.Options{MaxItems: 3})
	require.NoError(t, err)

	assert.Equal(t, 3, fake.calls)
	assert.Len(t, items, 3)
	assert.Equal(t, "t3", res.NextToken)
}

func TestBalancesAndContracts(t *testing.T) {
	fake := &fakeMBQ{}

	bals, _, err := pager.Collect(context.Background(), Balances(fake), *BalancesParams{Network: "ethereum-mainnet"}.Input(), pager.Options{})
	require.NoError(t, err)
	require.Len(t, bals, 1)
	assert.Equal(t, "42", aws.ToString(bals[0].Balance))

	contracts, res, err := pager.Collect(context.Background(), Contracts(fake), *ContractsParams{Network: "ethereum-mainnet", Deployer: "0xd"}.Input(), pager.Options{})
	require.NoError(t, err)
	assert.Empty(t, contracts)
	assert.Equal(t, 1, res.Pages)
}
