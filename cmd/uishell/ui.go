package main

import (
	tc "github.com/gdamore/tcell/v2"

	"github.com/dshills/uishell/internal/backend/tcell"
	"github.com/dshills/uishell/internal/input/key"
	"github.com/dshills/uishell/internal/notify"
	"github.com/dshills/uishell/internal/session"
)

// terminalUI is the demo's rendering layer: a statusline, a one-line
// notification area and the inputbar, drawn straight onto the tcell
// screen. It implements the collaborator interfaces the session
// expects from its rendering layer.
type terminalUI struct {
	screen  tc.Screen
	session *session.Session

	inputbarOpen bool
	prompt       string
	inputText    []rune
	invisible    bool

	statusLevel notify.Level
	statusText  string

	prevButtons tc.ButtonMask
}

// ShowNotification implements notify.StatusSink.
func (ui *terminalUI) ShowNotification(level notify.Level, message string) error {
	ui.statusLevel = level
	ui.statusText = message
	ui.draw()
	return nil
}

// OpenInputbar implements session.InputbarPresenter.
func (ui *terminalUI) OpenInputbar(prompt string, invisible bool) {
	ui.inputbarOpen = true
	ui.prompt = prompt
	ui.invisible = invisible
	ui.inputText = ui.inputText[:0]
	ui.draw()
}

// CloseInputbar implements session.InputbarPresenter.
func (ui *terminalUI) CloseInputbar() {
	ui.inputbarOpen = false
	ui.inputText = ui.inputText[:0]
	ui.draw()
}

// SetInputbarText implements session.InputbarPresenter.
func (ui *terminalUI) SetInputbarText(text string) {
	ui.inputText = []rune(text)
	ui.draw()
}

// loop pumps tcell events into the session until quit closes.
func (ui *terminalUI) loop(quit chan struct{}) int {
	events := make(chan tc.Event, 16)
	go func() {
		for {
			ev := ui.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case <-quit:
			return 0
		case ev := <-events:
			switch tev := ev.(type) {
			case *tc.EventResize:
				ui.screen.Sync()
				ui.draw()
			case *tc.EventKey:
				ui.handleKey(tev)
			case *tc.EventMouse:
				mev, buttons := tcell.TranslateMouse(tev, ui.prevButtons)
				ui.prevButtons = buttons
				_, _ = ui.session.HandleMouse(mev)
			}
		}
	}
}

func (ui *terminalUI) handleKey(tev *tc.EventKey) {
	ev, ok := tcell.TranslateKey(tev)
	if !ok {
		return
	}

	if ui.inputbarOpen {
		ui.handleInputbarKey(ev)
		return
	}
	_, _ = ui.session.HandleKey(ev)
	ui.draw()
}

// handleInputbarKey gives the session's inputbar shortcut table first
// refusal; unhandled events edit the entry.
func (ui *terminalUI) handleInputbarKey(ev key.Event) {
	handled, _ := ui.session.HandleInputbarKey(ev)
	if handled {
		ui.draw()
		return
	}

	switch {
	case ev.Key == key.KeyEnter:
		input := string(ui.inputText)
		_ = ui.session.InputbarSubmit(input)
	case ev.Key == key.KeyBackspace:
		if len(ui.inputText) > 0 {
			ui.inputText = ui.inputText[:len(ui.inputText)-1]
			_ = ui.session.InputbarChanged(string(ui.inputText))
		}
	case ev.Key == key.KeySpace:
		ui.inputText = append(ui.inputText, ' ')
		_ = ui.session.InputbarChanged(string(ui.inputText))
	case ev.IsPrintable() && !ev.IsModified():
		ui.inputText = append(ui.inputText, ev.Rune)
		_ = ui.session.InputbarChanged(string(ui.inputText))
	}
	ui.draw()
}

func (ui *terminalUI) draw() {
	ui.screen.Clear()
	width, height := ui.screen.Size()
	if height < 2 {
		ui.screen.Show()
		return
	}

	modeName := ""
	if id, err := ui.session.Mode(); err == nil {
		modeName = ui.session.Modes().Name(id)
	}
	status := "-- " + modeName + " --"
	if buf := ui.session.Buffer(); buf != "" {
		status += "  " + buf
	}
	ui.drawText(0, height-2, width, status, tc.StyleDefault.Reverse(true))

	switch {
	case ui.inputbarOpen:
		text := string(ui.inputText)
		if ui.invisible {
			text = ""
			for range ui.inputText {
				text += "*"
			}
		}
		ui.drawText(0, height-1, width, ui.prompt+text, tc.StyleDefault)
	case ui.statusText != "":
		style := tc.StyleDefault
		if ui.statusLevel == notify.Error {
			style = style.Foreground(tc.ColorRed)
		}
		ui.drawText(0, height-1, width, ui.statusText, style)
	}
	ui.screen.Show()
}

func (ui *terminalUI) drawText(x, y, maxWidth int, text string, style tc.Style) {
	col := x
	for _, r := range text {
		if col >= maxWidth {
			break
		}
		ui.screen.SetContent(col, y, r, nil, style)
		col++
	}
}
