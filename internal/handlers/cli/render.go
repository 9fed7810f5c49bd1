package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/KirkDiggler/hydroquest/internal/models"
)

// formatClock renders seconds as m:ss
func formatClock(total int) string {
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// formatHours renders minutes as hh:mm
func formatHours(minutes float64) string {
	total := int(minutes)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

func write(w io.Writer, b *strings.Builder) error {
	_, err := io.WriteString(w, b.String())
	return err
}

func renderOutcome(b *strings.Builder, o *OutcomeView) {
	if o == nil {
		return
	}
	fmt.Fprintf(b, "%s\n", o.Title)
	fmt.Fprintf(b, "%s\n", o.Message)
	if o.Flavor != "" {
		fmt.Fprintf(b, "%s\n", o.Flavor)
	}
	fmt.Fprintf(b, "%s: hydroquest reset\n", o.Action)
}

func renderStatus(w io.Writer, v *StatusView) error {
	var b strings.Builder

	switch v.Status {
	case models.SessionStatusRunning:
		fmt.Fprintf(&b, "Fighting %s (difficulty %d)\n", v.Monster.Name, v.Difficulty)
		fmt.Fprintf(&b, "Time left: %s\n", formatClock(v.RemainingSeconds))
		fmt.Fprintf(&b, "Water: %d / %d Cups\n", v.CupsDrank, v.TotalCups)
		if v.RateLimited {
			fmt.Fprintf(&b, "COOLDOWN %s\n", formatClock(v.CooldownSeconds))
		} else {
			b.WriteString("Ready: hydroquest drink\n")
		}
		if v.Dehydrated {
			b.WriteString("You are dehydrated! Drink some water.\n")
		}
	case models.SessionStatusWon, models.SessionStatusLost:
		renderOutcome(&b, v.Outcome)
	default:
		b.WriteString("No challenge in progress. Start one with: hydroquest start\n")
	}

	fmt.Fprintf(&b, "Gold: %d  Trophies: %d  Level: %d\n", v.Gold, v.Trophies, v.Level)
	fmt.Fprintf(&b, "Lifetime: %d ml over %d won sessions\n", v.TotalWaterDrankML, v.SessionsCompleted)

	return write(w, &b)
}

func renderStart(w io.Writer, v *StartView) error {
	var b strings.Builder

	if !v.Started {
		fmt.Fprintf(&b, "A challenge is already %s. Finish it first.\n", v.Status)
		return write(w, &b)
	}

	fmt.Fprintf(&b, "%s\n", v.Message)
	fmt.Fprintf(&b, "Goal: %d ml (%d cups) in %s\n", v.WaterGoalML, v.TotalCups, formatHours(v.DurationMinutes))
	fmt.Fprintf(&b, "Difficulty: %d\n", v.Difficulty)

	return write(w, &b)
}

func renderDrink(w io.Writer, v *DrinkView) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", v.Message)
	switch {
	case v.RateLimited:
		fmt.Fprintf(&b, "COOLDOWN %s\n", formatClock(v.CooldownSeconds))
	case v.Accepted:
		fmt.Fprintf(&b, "Water: %d / %d Cups\n", v.CupsDrank, v.TotalCups)
	}
	renderOutcome(&b, v.Outcome)

	return write(w, &b)
}

func renderResult(w io.Writer, v *ResultView) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", v.Message)
	renderOutcome(&b, v.Outcome)

	return write(w, &b)
}

func renderMonsters(w io.Writer, v *MonstersView) error {
	var b strings.Builder

	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCOST\tSTATUS")
	for _, m := range v.Monsters {
		status := "locked"
		if m.Unlocked {
			status = "unlocked"
		}
		if m.Selected {
			status += " *"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", m.ID, m.Name, m.Cost, status)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(&b, "Gold: %d\n", v.Gold)

	return write(w, &b)
}

func renderBuy(w io.Writer, v *BuyView) error {
	var b strings.Builder

	switch {
	case v.Purchased:
		fmt.Fprintf(&b, "Unlocked %s for %d gold.\n", v.Monster.Name, v.Cost)
	case v.AlreadyUnlocked:
		fmt.Fprintf(&b, "%s is already unlocked.\n", v.Monster.Name)
	default:
		fmt.Fprintf(&b, "Not enough gold for %s (costs %d).\n", v.Monster.Name, v.Cost)
	}
	fmt.Fprintf(&b, "Gold: %d\n", v.Gold)

	return write(w, &b)
}

func renderTrophies(w io.Writer, v *TrophiesView) error {
	var b strings.Builder

	if len(v.Trophies) == 0 {
		b.WriteString("No trophies yet. Defeat a monster to earn one.\n")
		return write(w, &b)
	}

	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tMONSTER\tDIFFICULTY\tLEVEL")
	for _, t := range v.Trophies {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\n", t.Date.UTC().Format(time.DateOnly), t.Monster.Name, t.Difficulty, t.TrophyLevel)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(&b, "Sessions won: %d\n", v.SessionsCompleted)

	return write(w, &b)
}

func renderAccount(w io.Writer, v *AccountView) error {
	var b strings.Builder

	if !v.SignedIn {
		b.WriteString("Not signed in.\n")
		return write(w, &b)
	}

	fmt.Fprintf(&b, "Signed in as %s\n", v.Email)
	fmt.Fprintf(&b, "Session expires %s\n", v.ExpiresAt.UTC().Format(time.RFC3339))

	return write(w, &b)
}

func renderSync(w io.Writer, v *SyncView) error {
	var b strings.Builder

	if v.RemoteFound {
		b.WriteString("Sync Complete!\n")
	} else {
		b.WriteString("Sync Complete! First upload for this account.\n")
	}
	fmt.Fprintf(&b, "Water: %d ml  Cups: %d  Sessions won: %d  Trophies: %d\n",
		v.TotalWaterDrankML, v.TotalCups, v.SessionsCompleted, v.Trophies)
	fmt.Fprintf(&b, "Monsters unlocked: %d  Level: %d\n", v.UnlockedMonsters, v.Level)
	fmt.Fprintf(&b, "Gold: %d  Bank: %d\n", v.Gold, v.BankGold)

	return write(w, &b)
}

func renderBank(w io.Writer, v *BankView) error {
	var b strings.Builder

	switch v.Operation {
	case "deposit":
		fmt.Fprintf(&b, "Deposited %d gold.\n", v.Amount)
	case "withdraw":
		fmt.Fprintf(&b, "Withdrew %d gold.\n", v.Amount)
	}
	fmt.Fprintf(&b, "Gold: %d  Bank: %d\n", v.Gold, v.BankGold)

	return write(w, &b)
}

func renderDevice(w io.Writer, v *DeviceView) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Device ID: %s\n", v.DeviceID)
	return write(w, &b)
}

func renderSettings(w io.Writer, v *SettingsView) error {
	var b strings.Builder
	state := "off"
	if v.EffectsEnabled {
		state = "on"
	}
	fmt.Fprintf(&b, "Dehydration effects: %s\n", state)
	return write(w, &b)
}

func renderWipe(w io.Writer, v *WipeView) error {
	var b strings.Builder
	if v.Wiped {
		b.WriteString("Local data reset.\n")
	}
	return write(w, &b)
}
