package views

import "gpxcolor/internal/domain"

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// View switching messages

// SwitchToPickerMsg returns to the file picker
type SwitchToPickerMsg struct{}

// SwitchToHelpMsg opens the help view
type SwitchToHelpMsg struct{}

// ColorizedMsg carries a finished colorize report to the report view
type ColorizedMsg struct {
	Report *domain.ColorizeReport
}

// ColorizeErrMsg carries a failed colorize run
type ColorizeErrMsg struct {
	Err error
}
