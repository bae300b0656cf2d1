package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aduwothevillian/GameVault/internal/model"
	"github.com/aduwothevillian/GameVault/internal/services/system"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case *system.Status:
		o.printStatus(v)
	case *model.Contract:
		o.printContract(v)
	case *model.Game:
		o.printGame(v)
	case *model.Profile:
		o.printProfile(v)
	case *model.Permissions:
		o.printPermissions(v)
	case *model.Stats:
		o.printStats(v)
	case *model.VerificationCode:
		o.printVerification(v)
	case *model.AdminAction:
		o.printAdminAction(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printStatus(s *system.Status) {
	fmt.Printf("Initialized: %t\n", s.Initialized)
	fmt.Printf("Paused: %t\n", s.Paused)
	fmt.Printf("Owner: %s\n", s.Owner)
	fmt.Printf("Contracts: %d\n", s.TotalContracts)
	fmt.Printf("Games: %d\n", s.TotalGames)
	fmt.Printf("Players: %d\n", s.TotalPlayers)
}

func (o *Output) printContract(c *model.Contract) {
	fmt.Printf("Contract: %s\n", c.Name)
	fmt.Printf("Address: %s\n", c.Address)
	fmt.Printf("Version: %s\n", c.Version)
	fmt.Printf("Enabled: %t\n", c.Enabled)
	fmt.Printf("Updated: %s\n", c.UpdatedAt.Format("2006-01-02 15:04:05"))
}

func (o *Output) printGame(g *model.Game) {
	fmt.Printf("Game: %s\n", g.ID)
	fmt.Printf("Name: %s\n", g.Name)
	fmt.Printf("Developer: %s\n", g.Developer)
	fmt.Printf("Active: %t\n", g.Active)
}

func (o *Output) printProfile(p *model.Profile) {
	fmt.Printf("Player: %s (%s)\n", p.Username, p.Identity)
	fmt.Printf("Display Name: %s\n", p.DisplayName)
	fmt.Printf("Status: %s\n", p.Status)
	fmt.Printf("Verification: %s\n", p.Level)
	fmt.Printf("Reputation: %d\n", p.Reputation)
	if p.Bio != "" {
		fmt.Printf("Bio: %s\n", p.Bio)
	}
	if p.Locked {
		fmt.Println("Profile locked")
	}
	if p.KYCVerified {
		fmt.Println("KYC verified")
	}
}

func (o *Output) printPermissions(p *model.Permissions) {
	fmt.Printf("Permissions for %s:\n", p.Identity)
	fmt.Printf("  Create: %t\n", p.CanCreate)
	fmt.Printf("  Vote: %t\n", p.CanVote)
	fmt.Printf("  Moderate: %t\n", p.CanModerate)
	fmt.Printf("  Admin: %t\n", p.IsAdmin)
}

func (o *Output) printStats(s *model.Stats) {
	fmt.Printf("Stats for %s:\n", s.Identity)
	fmt.Printf("  Games Played: %d\n", s.GamesPlayed)
	fmt.Printf("  Games Won: %d\n", s.GamesWon)
	fmt.Printf("  Tournaments Entered: %d\n", s.TournamentsEntered)
	fmt.Printf("  Tournaments Won: %d\n", s.TournamentsWon)
	fmt.Printf("  Assets Owned: %d\n", s.AssetsOwned)
	fmt.Printf("  Votes Cast: %d\n", s.VotesCast)
}

func (o *Output) printVerification(v *model.VerificationCode) {
	fmt.Printf("Verification: %s / %s\n", v.Identity, v.Kind)
	fmt.Printf("Verified: %t\n", v.Verified)
	fmt.Printf("Attempts: %d\n", v.Attempts)
	fmt.Printf("Expires: %s\n", v.ExpiresAt.Format("2006-01-02 15:04:05"))
}

func (o *Output) printAdminAction(a *model.AdminAction) {
	fmt.Printf("Action #%d: %s\n", a.ID, a.Type)
	fmt.Printf("Admin: %s\n", a.Admin)
	fmt.Printf("Target: %s\n", a.Target)
	if a.Reason != "" {
		fmt.Printf("Reason: %s\n", a.Reason)
	}
	fmt.Printf("At: %s\n", a.At.Format("2006-01-02 15:04:05"))
}
