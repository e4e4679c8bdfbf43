package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/globalsight/sar-drone-client/models"
)

func TestRenderPage_Layout(t *testing.T) {
	out := renderPage("DISASTER HISTORY", "row one\nrow two", "r: reload")

	assert.Contains(t, out, "DISASTER HISTORY")
	assert.Contains(t, out, "row one")
	assert.Contains(t, out, "row two")
	assert.Contains(t, out, "r: reload")
	assert.Contains(t, out, "ctrl+c: quit")
	assert.Contains(t, out, uiDivider)
}

func TestRenderPage_EmptyDataShowsDash(t *testing.T) {
	out := renderPage("MAIN MENU", "", "")

	assert.Contains(t, out, "  -\n")
}

func TestRenderError_ContainsMessage(t *testing.T) {
	out := renderError("No network or the server is unavailable")

	assert.Contains(t, out, "Error: ")
	assert.Contains(t, out, "No network or the server is unavailable")
}

// TestRenderBuildInfoWindow_Boxed verifies that the about overlay is drawn
// inside a rounded border with the build fields filled in.
func TestRenderBuildInfoWindow_Boxed(t *testing.T) {
	info := models.NewAppBuildInfo("v1.2.3", "2026-08-31", "abc1234")

	out := renderBuildInfoWindow(info)

	assert.Contains(t, out, "ABOUT")
	assert.Contains(t, out, "v1.2.3")
	assert.Contains(t, out, "2026-08-31")
	assert.Contains(t, out, "abc1234")
	assert.Contains(t, out, "╭")
	assert.Contains(t, out, "╰")
}

func TestRenderBuildInfoWindow_MissingFields(t *testing.T) {
	out := renderBuildInfoWindow(models.NewAppBuildInfo("", "", ""))

	assert.Contains(t, out, "N/A")
}

func TestValueOrDash(t *testing.T) {
	assert.Equal(t, "-", valueOrDash(""))
	assert.Equal(t, "Flood", valueOrDash("Flood"))
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "long te...", fitText("long text that overflows", 10))
	assert.Equal(t, "ab", fitText("abcd", 2))
}
