// Package ui contains the Bubble Tea program that renders the business card.
// The Model type focuses on message orchestration while dedicated helpers own
// navigation, filter input, and rendering.
//
// Message flow:
//   - Init starts the single profile load. Until profileLoadedMsg arrives the
//     model shows a spinner and only ctrl+c is honoured.
//   - Update routes every message through a typed handler registry. Key
//     presses are offered to the konami detector first, then to the filter
//     (when open), and finally mapped onto nav events.
//   - nav.Navigator owns the screen state. Browser launches it requests are
//     queued and drained into tea.Cmds run by internal/ui/command, so the
//     event loop never waits on a child process.
//
// State ownership:
//   - Per-menu cursor, filter, and viewport live in internal/ui/state.Level,
//     one level per menu screen, which is why returning from a detail screen
//     lands on the item that was selected.
//   - The easter-egg overlay is a flag on the model. It never touches
//     nav.State, so dismissing it shows the prior screen untouched.
package ui
