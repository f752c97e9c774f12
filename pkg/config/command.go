package config

// DefaultTestnetStake is the stake amount used by the testnet command when
// --stake is not given.
const DefaultTestnetStake uint32 = 100

// CommandKind enumerates the operator subcommands.
type CommandKind int

const (
	// CommandOptInAVS registers the operator with the AVS and exits.
	CommandOptInAVS CommandKind = iota
	// CommandOptOutAVS deregisters the operator from the AVS and exits.
	CommandOptOutAVS
	// CommandPrintStatus queries and prints operator status, then exits.
	CommandPrintStatus
	// CommandTestnet runs the local-network staking flow. Anvil only.
	CommandTestnet
)

func (k CommandKind) String() string {
	switch k {
	case CommandOptInAVS:
		return "opt-in-avs"
	case CommandOptOutAVS:
		return "opt-out-avs"
	case CommandPrintStatus:
		return "print-status"
	case CommandTestnet:
		return "testnet"
	default:
		return "unknown"
	}
}

// Command is an explicitly selected subcommand. A nil *Command on the
// Config means "run the default operator loop".
type Command struct {
	Kind CommandKind `yaml:"kind" json:"kind"`

	// Stake is only meaningful for CommandTestnet.
	Stake uint32 `yaml:"stake,omitempty" json:"stake,omitempty"`
}

// OptInAVS selects the opt-in subcommand.
func OptInAVS() *Command { return &Command{Kind: CommandOptInAVS} }

// OptOutAVS selects the opt-out subcommand.
func OptOutAVS() *Command { return &Command{Kind: CommandOptOutAVS} }

// PrintStatus selects the status subcommand.
func PrintStatus() *Command { return &Command{Kind: CommandPrintStatus} }

// Testnet selects the testnet subcommand with the given stake.
func Testnet(stake uint32) *Command { return &Command{Kind: CommandTestnet, Stake: stake} }
