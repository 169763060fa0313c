// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package mbquery maps Amazon Managed Blockchain Query list operations onto
// pager operations.
package mbquery

import (
	"context"
	"strings"
	"time"

	mbq "github.com/aws/aws-sdk-go-v2/service/managedblockchainquery"
	"github.com/aws/aws-sdk-go-v2/service/managedblockchainquery/types"

	awsx "github.com/staranto/awsqgo/internal/aws"
	"github.com/staranto/awsqgo/internal/pager"
)

// TransactionsParams filter ListTransactions. Address and Network are
// required by the service.
type TransactionsParams struct {
	Address      string
	Network      string
	From         time.Time
	To           time.Time
	SortOrder    string
	Confirmation []string
}

// Input builds the ListTransactions request. Instants, sort and confirmation
// filter are each omitted when unset.
func (p TransactionsParams) Input() *mbq.ListTransactionsInput {
	in := &mbq.ListTransactionsInput{
		Address: awsx.StringOrNil(p.Address),
		Network: network(p.Network),
	}

	if !p.From.IsZero() {
		in.FromBlockchainInstant = &types.BlockchainInstant{Time: awsx.TimeOrNil(p.From)}
	}
	if !p.To.IsZero() {
		in.ToBlockchainInstant = &types.BlockchainInstant{Time: awsx.TimeOrNil(p.To)}
	}
	if p.SortOrder != "" {
		in.Sort = &types.ListTransactionsSort{
			SortBy:    types.ListTransactionsSortByTransactionTimestamp,
			SortOrder: types.SortOrder(strings.ToUpper(p.SortOrder)),
		}
	}
	if len(p.Confirmation) > 0 {
		in.ConfirmationStatusFilter = &types.ConfirmationStatusFilter{
			Include: awsx.MapSlice(p.Confirmation, func(s string) types.ConfirmationStatus {
				return types.ConfirmationStatus(strings.ToUpper(s))
			}),
		}
	}

	return in
}

// BalancesParams filter ListTokenBalances. Network is required.
type BalancesParams struct {
	Network         string
	ContractAddress string
	TokenID         string
	Owner           string
}

func (p BalancesParams) Input() *mbq.ListTokenBalancesInput {
	in := &mbq.ListTokenBalancesInput{
		TokenFilter: &types.TokenFilter{
			Network:         network(p.Network),
			ContractAddress: awsx.StringOrNil(p.ContractAddress),
			TokenId:         awsx.StringOrNil(p.TokenID),
		},
	}
	if p.Owner != "" {
		in.OwnerFilter = &types.OwnerFilter{Address: awsx.StringOrNil(p.Owner)}
	}
	return in
}

// ContractsParams filter ListAssetContracts. Network and Deployer are
// required.
type ContractsParams struct {
	Network       string
	TokenStandard string
	Deployer      string
}

func (p ContractsParams) Input() *mbq.ListAssetContractsInput {
	return &mbq.ListAssetContractsInput{
		ContractFilter: &types.ContractFilter{
			Network:         network(p.Network),
			TokenStandard:   types.QueryTokenStandard(strings.ToUpper(p.TokenStandard)),
			DeployerAddress: awsx.StringOrNil(p.Deployer),
		},
	}
}

// network normalizes "ethereum-mainnet" style input to the service enum.
func network(s string) types.QueryNetwork {
	return types.QueryNetwork(strings.ToUpper(strings.ReplaceAll(s, "-", "_")))
}

func Transactions(c awsx.BlockchainQueryAPI) pager.Operation[mbq.ListTransactionsInput, mbq.ListTransactionsOutput, types.TransactionOutputItem] {
	return pager.Operation[mbq.ListTransactionsInput, mbq.ListTransactionsOutput, types.TransactionOutputItem]{
		Name: "managedblockchainquery:ListTransactions",
		Fetch: func(ctx context.Context, in *mbq.ListTransactionsInput) (*mbq.ListTransactionsOutput, error) {
			return c.ListTransactions(ctx, in)
		},
		Items:       func(o *mbq.ListTransactionsOutput) []types.TransactionOutputItem { return o.Transactions },
		NextToken:   func(o *mbq.ListTransactionsOutput) *string { return o.NextToken },
		SetToken:    func(in *mbq.ListTransactionsInput, t *string) { in.NextToken = t },
		SetPageSize: func(in *mbq.ListTransactionsInput, n *int32) { in.MaxResults = n },
	}
}

func Balances(c awsx.BlockchainQueryAPI) pager.Operation[mbq.ListTokenBalancesInput, mbq.ListTokenBalancesOutput, types.TokenBalance] {
	return pager.Operation[mbq.ListTokenBalancesInput, mbq.ListTokenBalancesOutput, types.TokenBalance]{
		Name: "managedblockchainquery:ListTokenBalances",
		Fetch: func(ctx context.Context, in *mbq.ListTokenBalancesInput) (*mbq.ListTokenBalancesOutput, error) {
			return c.ListTokenBalances(ctx, in)
		},
		Items:       func(o *mbq.ListTokenBalancesOutput) []types.TokenBalance { return o.TokenBalances },
		NextToken:   func(o *mbq.ListTokenBalancesOutput) *string { return o.NextToken },
		SetToken:    func(in *mbq.ListTokenBalancesInput, t *string) { in.NextToken = t },
		SetPageSize: func(in *mbq.ListTokenBalancesInput, n *int32) { in.MaxResults = n },
	}
}

func Contracts(c awsx.BlockchainQueryAPI) pager.Operation[mbq.ListAssetContractsInput, mbq.ListAssetContractsOutput, types.AssetContract] {
	return pager.Operation[mbq.ListAssetContractsInput, mbq.ListAssetContractsOutput, types.AssetContract]{
		Name: "managedblockchainquery:ListAssetContracts",
		Fetch: func(ctx context.Context, in *mbq.ListAssetContractsInput) (*mbq.ListAssetContractsOutput, error) {
			return c.ListAssetContracts(ctx, in)
		},
		Items:       func(o *mbq.ListAssetContractsOutput) []types.AssetContract { return o.Contracts },
		NextToken:   func(o *mbq.ListAssetContractsOutput) *string { return o.NextToken },
		SetToken:    func(in *mbq.ListAssetContractsInput, t *string) { in.NextToken = t },
		SetPageSize: func(in *mbq.ListAssetContractsInput, n *int32) { in.MaxResults = n },
	}
}
