// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	mbq "github.com/aws/aws-sdk-go-v2/service/managedblockchainquery"
	"github.com/aws/aws-sdk-go-v2/service/managedblockchainquery/types"
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/awsqgo/internal/meta"
	"github.com/staranto/awsqgo/internal/pager"
	"github.com/staranto/awsqgo/internal/services/mbquery"
)

const mbQueryNS = "mbquery"

var networks = []string{"ethereum-mainnet", "ethereum-sepolia-testnet", "bitcoin-mainnet", "bitcoin-testnet"}

var transactionsRunner = &QueryActionRunner[mbq.ListTransactionsInput, mbq.ListTransactionsOutput, types.TransactionOutputItem]{
	Service:      mbQueryNS,
	DefaultAttrs: []string{"TransactionHash:hash:-24", "TransactionTimestamp:time:t", "ConfirmationStatus:status", "Network"},
	Examples: [][2]string{
		{"awsq mbquery transactions --address 0xabc --network ethereum-mainnet", "transactions of an address"},
		{"awsq mbquery transactions --address 0xabc --from 2025-01-01 --sort descending --max-items 50", "latest 50 this year"},
	},
	Build: func(ctx context.Context, cmd *cli.Command, cfg aws.Config) (
		op pager.Operation[mbq.ListTransactionsInput, mbq.ListTransactionsOutput, types.TransactionOutputItem],
		in *mbq.ListTransactionsInput, err error,
	) {
		if err = RequireFlags(cmd, "address"); err != nil {
			return
		}
		p := mbquery.TransactionsParams{
			Address:      cmd.String("address"),
			Network:      cmd.String("network"),
			From:         cmd.Timestamp("from"),
			To:           cmd.Timestamp("to"),
			SortOrder:    cmd.String("sort"),
			Confirmation: cmd.StringSlice("confirmation"),
		}
		return mbquery.Transactions(newBlockchainQueryClient(cfg)), p.Input(), nil
	},
}

var balancesRunner = &QueryActionRunner[mbq.ListTokenBalancesInput, mbq.ListTokenBalancesOutput, types.TokenBalance]{
	Service:      mbQueryNS,
	DefaultAttrs: []string{"OwnerIdentifier.Address:owner:-24", "TokenIdentifier.ContractAddress:contract:-24", "TokenIdentifier.TokenId:token", "Balance"},
	Examples: [][2]string{
		{"awsq mbquery balances --network ethereum-mainnet --owner 0xabc", "token balances of an owner"},
		{"awsq mbquery balances --contract 0xdef --token-id 42", "holders of one token"},
	},
	Build: func(ctx context.Context, cmd *cli.Command, cfg aws.Config) (
		pager.Operation[mbq.ListTokenBalancesInput, mbq.ListTokenBalancesOutput, types.TokenBalance],
		*mbq.ListTokenBalancesInput, error,
	) {
		p := mbquery.BalancesParams{
			Network:         cmd.String("network"),
			ContractAddress: cmd.String("contract"),
			TokenID:         cmd.String("token-id"),
			Owner:           cmd.String("owner"),
		}
		return mbquery.Balances(newBlockchainQueryClient(cfg)), p.Input(), nil
	},
}

var contractsRunner = &QueryActionRunner[mbq.ListAssetContractsInput, mbq.ListAssetContractsOutput, types.AssetContract]{
	Service:      mbQueryNS,
	DefaultAttrs: []string{"ContractIdentifier.ContractAddress:contract", "TokenStandard:standard", "DeployerAddress:deployer:-24"},
	Examples: [][2]string{
		{"awsq mbquery contracts --deployer 0xabc", "contracts deployed by an address"},
		{"awsq mbquery contracts --deployer 0xabc --token-standard erc721", "only NFT contracts"},
	},
	Build: func(ctx context.Context, cmd *cli.Command, cfg aws.Config) (
		op pager.Operation[mbq.ListAssetContractsInput, mbq.ListAssetContractsOutput, types.AssetContract],
		in *mbq.ListAssetContractsInput, err error,
	) {
		if err = RequireFlags(cmd, "deployer"); err != nil {
			return
		}
		p := mbquery.ContractsParams{
			Network:       cmd.String("network"),
			TokenStandard: cmd.String("token-standard"),
			Deployer:      cmd.String("deployer"),
		}
		return mbquery.Contracts(newBlockchainQueryClient(cfg)), p.Input(), nil
	},
}

// newNetworkFlag builds --network, defaulting from AWSQ_NETWORK or the
// config file.
func newNetworkFlag(op string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "network",
		Usage: "blockchain network",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("AWSQ_NETWORK"),
			yaml.YAML(mbQueryNS+"."+op+".network", altsrc.StringSourcer(cfgSource())),
			yaml.YAML(mbQueryNS+".network", altsrc.StringSourcer(cfgSource())),
		),
		Value: "ethereum-mainnet",
		Validator: func(v string) error {
			return FlagValidators(v, OneOfValidator(networks...))
		},
	}
}

// MbQueryCommandBuilder constructs the "mbquery" command group.
func MbQueryCommandBuilder(meta meta.Meta) *cli.Command {
	sort := stringFlag(mbQueryNS, "transactions", "sort", "order by transaction time, ascending or descending")
	sort.Validator = func(v string) error {
		return FlagValidators(v, OneOfValidator("ascending", "descending"))
	}

	transactions := (&QueryCommandBuilder{
		Service:   mbQueryNS,
		Name:      "transactions",
		Usage:     "list transactions of an address",
		UsageText: "awsq mbquery transactions --address ADDR [options]",
		Flags: []cli.Flag{
			stringFlag(mbQueryNS, "transactions", "address", "address to list (required)"),
			newNetworkFlag("transactions"),
			timeFlag("from", "transactions at or after"),
			timeFlag("to", "transactions at or before"),
			sort,
			sliceFlag("confirmation", "confirmation statuses to include (final, nonfinal)"),
		},
		Action:   transactionsRunner.Run,
		Examples: transactionsRunner.Examples,
		Meta:     meta,
	}).Build()

	balances := (&QueryCommandBuilder{
		Service:   mbQueryNS,
		Name:      "balances",
		Usage:     "list token balances",
		UsageText: "awsq mbquery balances [options]",
		Flags: []cli.Flag{
			newNetworkFlag("balances"),
			stringFlag(mbQueryNS, "balances", "contract", "token contract address"),
			stringFlag(mbQueryNS, "balances", "token-id", "token id within the contract"),
			stringFlag(mbQueryNS, "balances", "owner", "owner address"),
		},
		Action:   balancesRunner.Run,
		Examples: balancesRunner.Examples,
		Meta:     meta,
	}).Build()

	contracts := (&QueryCommandBuilder{
		Service:   mbQueryNS,
		Name:      "contracts",
		Usage:     "list asset contracts",
		UsageText: "awsq mbquery contracts --deployer ADDR [options]",
		Flags: []cli.Flag{
			newNetworkFlag("contracts"),
			stringFlag(mbQueryNS, "contracts", "token-standard", "erc20, erc721 or erc1155"),
			stringFlag(mbQueryNS, "contracts", "deployer", "deployer address (required)"),
		},
		Action:   contractsRunner.Run,
		Examples: contractsRunner.Examples,
		Meta:     meta,
	}).Build()

	return &cli.Command{
		Name:     mbQueryNS,
		Usage:    "Amazon Managed Blockchain Query transactions, balances and contracts",
		Metadata: map[string]any{"meta": meta},
		Commands: []*cli.Command{transactions, balances, contracts},
	}
}
