// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/staranto/awsqgo/internal/meta"
)

const bashCompletionScript = `# bash completion for awsq
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_awsq()
{
    local cur prev svc op
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "health appinsights mbquery tsquery s3 completion --help --version" -- "$cur") )
        return 0
    fi

    svc=${COMP_WORDS[1]}
    if [[ ${COMP_CWORD} -eq 2 ]]; then
        case "$svc" in
        health)      COMPREPLY=( $(compgen -W "events entities event-types" -- "$cur") ) ;;
        appinsights) COMPREPLY=( $(compgen -W "applications problems components" -- "$cur") ) ;;
        mbquery)     COMPREPLY=( $(compgen -W "transactions balances contracts" -- "$cur") ) ;;
        tsquery)     COMPREPLY=( $(compgen -W "query scheduled tags" -- "$cur") ) ;;
        s3)          COMPREPLY=( $(compgen -W "objects" -- "$cur") ) ;;
        completion)  COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") ) ;;
        esac
        return 0
    fi

    op=${COMP_WORDS[2]}
    local common="--attrs -a --color -c --output -o --titles -t --region -r --profile --max-attempts --retry-mode --max-items -m --page-size --starting-token --no-paginate --interactive -i --schema --examples --tldr"

    case "$svc/$op" in
    health/events)
        local opts="$common --service --event-region --az --code --category --status --event-arn --entity-arn --entity-value --start-from --start-to --end-from --end-to --updated-from --updated-to --locale"
        ;;
    health/entities)
        local opts="$common --event-arn --entity-arn --entity-value --status --updated-from --updated-to --locale"
        ;;
    health/event-types)
        local opts="$common --service --code --category --locale"
        ;;
    appinsights/applications)
        local opts="$common --account-id"
        ;;
    appinsights/problems)
        local opts="$common --resource-group --component --start --end --visibility --account-id"
        ;;
    appinsights/components)
        local opts="$common --resource-group --account-id"
        ;;
    mbquery/transactions)
        local opts="$common --address --network --from --to --sort --confirmation"
        ;;
    mbquery/balances)
        local opts="$common --network --contract --token-id --owner"
        ;;
    mbquery/contracts)
        local opts="$common --network --token-standard --deployer"
        ;;
    tsquery/query)
        local opts="$common --query -q --client-token"
        ;;
    tsquery/tags)
        local opts="$common --arn"
        ;;
    s3/objects)
        local opts="$common --bucket -b --endpoint --prefix --delimiter --start-after"
        ;;
    *)
        local opts="$common"
        ;;
    esac

    case "$prev" in
    --output|-o)
        COMPREPLY=( $(compgen -W "text json yaml raw" -- "$cur") )
        return 0
        ;;
    --retry-mode)
        COMPREPLY=( $(compgen -W "standard adaptive" -- "$cur") )
        return 0
        ;;
    --network)
        COMPREPLY=( $(compgen -W "ethereum-mainnet ethereum-sepolia-testnet bitcoin-mainnet bitcoin-testnet" -- "$cur") )
        return 0
        ;;
    esac

    COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    return 0
}

complete -F _awsq awsq
`

const zshCompletionScript = `#compdef awsq

_awsq() {
  local -a services
  services=(
    'health:AWS Health events, entities and event types'
    'appinsights:Application Insights applications, problems and components'
    'mbquery:Managed Blockchain Query transactions, balances and contracts'
    'tsquery:Timestream queries, scheduled queries and tags'
    's3:S3 object listings'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '(-a --attrs)'{-a,--attrs}'[attributes to include]:attrs'
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-o --output)'{-o,--output}'[output format]:format:(text json yaml raw)'
  '(-t --titles)'{-t,--titles}'[show titles]'
  '(-r --region)'{-r,--region}'[AWS region]:region'
  '--profile[AWS profile]:profile'
  '--max-attempts[attempts per request]:n'
  '--retry-mode[SDK retry mode]:mode:(standard adaptive)'
  '(-m --max-items)'{-m,--max-items}'[item cap]:n'
  '--page-size[items per page]:n'
  '--starting-token[resume token]:token'
  '--no-paginate[single page]'
  '(-i --interactive)'{-i,--interactive}'[browse page by page]'
  '--schema[dump schema]'
  '--examples[show examples]'
  '--tldr[show tldr page]'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'awsq services' services
    return
  fi

  if (( CURRENT == 3 )); then
    case $words[2] in
      health) _values 'operation' events entities event-types ;;
      appinsights) _values 'operation' applications problems components ;;
      mbquery) _values 'operation' transactions balances contracts ;;
      tsquery) _values 'operation' query scheduled tags ;;
      s3) _values 'operation' objects ;;
      completion) _values 'shell' bash zsh ;;
    esac
    return
  fi

  case $words[2]/$words[3] in
    health/events)
      _arguments $common '--service[service codes]' '--event-region[event regions]' '--az[availability zones]' \
        '--code[event type codes]' '--category[categories]' '--status[status codes]' '--event-arn[event ARNs]' \
        '--entity-arn[entity ARNs]' '--entity-value[entity values]' '--start-from[time]' '--start-to[time]' \
        '--end-from[time]' '--end-to[time]' '--updated-from[time]' '--updated-to[time]' '--locale[locale]'
      ;;
    health/entities)
      _arguments $common '--event-arn[event ARNs]' '--entity-arn[entity ARNs]' '--entity-value[entity values]' \
        '--status[status codes]' '--updated-from[time]' '--updated-to[time]' '--locale[locale]'
      ;;
    health/event-types)
      _arguments $common '--service[service codes]' '--code[event type codes]' '--category[categories]' '--locale[locale]'
      ;;
    appinsights/applications)
      _arguments $common '--account-id[account]'
      ;;
    appinsights/problems)
      _arguments $common '--resource-group[group]' '--component[component]' '--start[time]' '--end[time]' \
        '--visibility[visibility]:visibility:(IGNORED VISIBLE)' '--account-id[account]'
      ;;
    appinsights/components)
      _arguments $common '--resource-group[group]' '--account-id[account]'
      ;;
    mbquery/transactions)
      _arguments $common '--address[address]' '--network[network]' '--from[time]' '--to[time]' \
        '--sort[order]:order:(ascending descending)' '--confirmation[statuses]'
      ;;
    mbquery/balances)
      _arguments $common '--network[network]' '--contract[contract]' '--token-id[token]' '--owner[owner]'
      ;;
    mbquery/contracts)
      _arguments $common '--network[network]' '--token-standard[standard]' '--deployer[deployer]'
      ;;
    tsquery/query)
      _arguments $common '(-q --query)'{-q,--query}'[query text]:sql' '--client-token[token]'
      ;;
    tsquery/tags)
      _arguments $common '--arn[resource ARN]'
      ;;
    s3/objects)
      _arguments $common '(-b --bucket)'{-b,--bucket}'[bucket]' '--endpoint[endpoint URL]' '--prefix[prefix]' \
        '--delimiter[delimiter]' '--start-after[key]'
      ;;
    *)
      _arguments $common
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _awsq awsq
`

func CompletionCommandAction(ctx context.Context, cmd *cli.Command) error {
	w := cmd.Root().Writer
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(w, bashCompletionScript)
	case "zsh":
		fmt.Fprint(w, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		if strings.HasSuffix(sh, "zsh") {
			fmt.Fprint(w, zshCompletionScript)
		} else if strings.HasSuffix(sh, "bash") {
			fmt.Fprint(w, bashCompletionScript)
		} else {
			fmt.Fprintln(cmd.Root().ErrWriter, "usage: awsq completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func CompletionCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "awsq completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: CompletionCommandAction,
	}
}
