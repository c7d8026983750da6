package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arrmcp/arrmcp/internal/agent"
)

// Chat styles, gum-flavoured.
var (
	chatTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	chatHintStyle   = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))
	chatPromptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	chatAgentStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	chatErrorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// runChat drives an interactive terminal session against the supervisor:
// read a task, run it, print the answer, repeat until EOF or "exit".
func runChat(ctx context.Context, sup *agent.Supervisor, service string) int {
	fmt.Println(chatTitleStyle.Render(service + " Agent — interactive chat"))
	fmt.Println(chatHintStyle.Render(`Type a request, or "exit" to quit.`))
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		select {
		case <-ctx.Done():
			return 0
		default:
		}

		fmt.Print(chatPromptStyle.Render("you › "))
		if !scanner.Scan() {
			fmt.Println()
			break
		}
		task := strings.TrimSpace(scanner.Text())
		if task == "" {
			continue
		}
		if task == "exit" || task == "quit" {
			break
		}

		answer, err := sup.Run(ctx, task)
		switch {
		case errors.Is(err, context.Canceled):
			return 0
		case err != nil:
			fmt.Println(chatErrorStyle.Render("error: ") + err.Error())
		default:
			fmt.Println(chatAgentStyle.Render(service+" › ") + answer)
		}
		fmt.Println()
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, chatErrorStyle.Render("read error: ")+err.Error())
		return 1
	}
	return 0
}
