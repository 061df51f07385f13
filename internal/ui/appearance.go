package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-settings/internal/locale"
	"github.com/ytget/yt-settings/internal/model"
)

// AppearanceWriter accepts appearance changes
type AppearanceWriter interface {
	AppSettingsSource
	Value() model.AppSettings
	SwitchDarkThemeMode(mode model.DarkThemePreference)
	ModifyThemeSeedColor(argb uint32)
}

// AppearancePanel edits the dark theme mode and the seed color
type AppearancePanel struct {
	cell AppearanceWriter
	loc  *locale.Localization

	form     *widget.Form
	darkMode *widget.RadioGroup
	seed     *widget.Entry
	status   *widget.Label

	modes []model.DarkThemePreference

	// rendering is set while show updates widgets, so their change
	// callbacks do not write the displayed snapshot back
	rendering bool
}

// NewAppearancePanel creates the panel and keeps it in sync with cell until ctx is done
func NewAppearancePanel(ctx context.Context, cell AppearanceWriter, loc *locale.Localization) *AppearancePanel {
	p := &AppearancePanel{
		cell:   cell,
		loc:    loc,
		modes:  model.DarkThemePreferences,
		status: widget.NewLabel(""),
	}

	labels := make([]string, len(p.modes))
	for i, m := range p.modes {
		labels[i] = loc.DarkThemeDesc(m)
	}
	p.darkMode = widget.NewRadioGroup(labels, p.onDarkMode)
	p.darkMode.Horizontal = true

	p.seed = widget.NewEntry()
	p.seed.SetPlaceHolder("#AARRGGBB")
	p.seed.Validator = func(s string) error {
		_, err := model.ParseARGB(s)
		return err
	}
	p.seed.OnSubmitted = p.onSeed

	p.form = widget.NewForm(
		widget.NewFormItem(loc.GetText(locale.KeyDarkTheme), p.darkMode),
		widget.NewFormItem(loc.GetText(locale.KeySeedColor), p.seed),
	)

	p.show(cell.Value())
	cell.Subscribe(ctx, func(s model.AppSettings) {
		fyne.Do(func() { p.show(s) })
	})
	return p
}

// Content returns the panel's canvas object
func (p *AppearancePanel) Content() fyne.CanvasObject {
	return container.NewVBox(p.form, p.status)
}

func (p *AppearancePanel) onDarkMode(label string) {
	if p.rendering {
		return
	}
	for i, m := range p.modes {
		if p.loc.DarkThemeDesc(m) == label && m != p.cell.Value().DarkTheme {
			p.cell.SwitchDarkThemeMode(p.modes[i])
			return
		}
	}
}

func (p *AppearancePanel) onSeed(s string) {
	argb, err := model.ParseARGB(s)
	if err != nil {
		p.status.SetText(err.Error())
		return
	}
	p.cell.ModifyThemeSeedColor(argb)
}

// show renders a snapshot; it runs on the Fyne main goroutine
func (p *AppearancePanel) show(s model.AppSettings) {
	p.rendering = true
	defer func() { p.rendering = false }()

	p.darkMode.SetSelected(p.loc.DarkThemeDesc(s.DarkTheme))
	p.seed.SetText(model.FormatARGB(s.SeedColor))
	p.status.SetText("")
}
