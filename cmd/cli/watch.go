package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Yathish26/GrojetDPartner/internal/api"
	"github.com/Yathish26/GrojetDPartner/internal/models"
)

const watchPollInterval = 5 * time.Second

var watchCmd = &cobra.Command{
	Use:     "watch",
	Short:   "Wait for incoming delivery requests",
	Long:    "Polls the server for new delivery requests while you are online. Press q to stop.",
	PreRunE: requireAgentAuthE,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := tea.NewProgram(newWatchModel()).Run()
		return err
	},
}

type watchStateMsg struct {
	online bool
	order  *models.Order
}

type watchErrMsg struct {
	err error
}

type watchTickMsg struct{}

type watchModel struct {
	spinner    spinner.Model
	online     bool
	order      *models.Order
	err        error
	lastUpdate time.Time
	quitting   bool
}

func newWatchModel() watchModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#3b82f6"))

	return watchModel{
		spinner: s,
	}
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, fetchWatchState)
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case watchStateMsg:
		m.online = msg.online
		m.order = msg.order
		m.err = nil
		m.lastUpdate = time.Now()
		return m, scheduleWatchPoll()

	case watchErrMsg:
		// Keep the last known state on screen; the next poll may recover.
		m.err = msg.err
		m.lastUpdate = time.Now()
		return m, scheduleWatchPoll()

	case watchTickMsg:
		return m, fetchWatchState

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m watchModel) View() string {
	if m.quitting {
		return ""
	}

	var view string

	view += titleStyle.Render("Grojet Delivery Requests") + "\n"

	if m.err != nil {
		view += warningStyle.Render("Connection problem, retrying...") + "\n"
	}

	switch {
	case m.order != nil:
		view += headerStyle.Render("New delivery request!") + "\n"
		view += fmt.Sprintf("  Order:    %s\n", m.order.ID)
		view += fmt.Sprintf("  Customer: %s\n", m.order.Customer)
		view += fmt.Sprintf("  Status:   %s\n", m.order.Status)
	case m.online:
		view += m.spinner.View() + " No new orders right now. Stay tuned!\n"
	default:
		view += offlineStyle.Render("You are offline.") + " Run 'grojet status --toggle' to go online.\n"
	}

	if !m.lastUpdate.IsZero() {
		view += dimStyle.Render(fmt.Sprintf("Last checked %s", m.lastUpdate.Format("15:04:05"))) + "\n"
	}

	view += dimStyle.Render("Press q to quit") + "\n"

	return view
}

func scheduleWatchPoll() tea.Cmd {
	return tea.Tick(watchPollInterval, func(time.Time) tea.Msg {
		return watchTickMsg{}
	})
}

func fetchWatchState() tea.Msg {

	resp, err := apiClient.Request(context.Background(), api.EndpointDeliveryProfile, nil)

	if err != nil {
		return watchErrMsg{err: err}
	}

	if !resp.OK || !resp.Success() {
		return watchErrMsg{err: fmt.Errorf("profile fetch failed with status %d", resp.Status)}
	}

	agent, _ := resp.Body["agent"].(map[string]any)
	online, _ := agent["isOnline"].(bool)

	state := watchStateMsg{online: online}

	if _, ok := resp.Body["newOrder"]; ok {
		var order models.Order
		if err := resp.Decode("newOrder", &order); err == nil {
			state.order = &order
		}
	}

	return state
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
