/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ccgkit/go-card-table/models"
)

var (
	dealHands int
	dealCards int
)

var (
	redCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Background(lipgloss.Color("15")).
			Bold(true).
			Padding(0, 1)
	blackCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("15")).
			Bold(true).
			Padding(0, 1)
	jokerCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("13")).
			Background(lipgloss.Color("15")).
			Italic(true).
			Padding(0, 1)
	handLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
)

// dealCmd represents the deal command
var dealCmd = &cobra.Command{
	Use:   "deal",
	Short: "Deal hands from a shuffled standard deck to the terminal",
	Run: func(cmd *cobra.Command, args []string) {
		deck := models.StandardDeck()
		deck.Shuffle()

		players := make([]*models.Player, dealHands)
		for i := range players {
			players[i] = &models.Player{Name: fmt.Sprintf("Player %d", i+1), Health: 20}
		}
		for c := 0; c < dealCards; c++ {
			for _, p := range players {
				card, ok := deck.Draw()
				if !ok {
					break
				}
				p.Hand.Add(card)
			}
		}

		for _, p := range players {
			rendered := make([]string, 0, len(p.Hand.Cards))
			for _, card := range p.Hand.Cards {
				rendered = append(rendered, styleCard(card.Name))
			}
			fmt.Printf("%s  %s\n",
				handLabelStyle.Render(p.Name),
				strings.Join(rendered, " "))
		}
		fmt.Printf("%d cards left in the deck\n", len(deck.Cards))
	},
}

func styleCard(label string) string {
	_, suit := models.SplitLabel(label)
	switch suit {
	case "♥", "♦":
		return redCardStyle.Render(label)
	case "♠", "♣":
		return blackCardStyle.Render(label)
	}
	return jokerCardStyle.Render(label)
}

func init() {
	rootCmd.AddCommand(dealCmd)
	dealCmd.Flags().IntVar(&dealHands, "hands", 2, "Number of hands to deal")
	dealCmd.Flags().IntVar(&dealCards, "cards", 5, "Cards per hand")
}
