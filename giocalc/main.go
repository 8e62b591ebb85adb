package main

import (
	"image"
	"image/color"
	"log"
	"os"
	"strings"
	"sync"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/clipboard"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/fjl/giocalc/internal/dispatch"
)

var (
	digitColor       = color.NRGBA{90, 90, 90, 255}
	specialColor     = color.NRGBA{70, 70, 70, 255}
	opColor          = color.NRGBA{122, 90, 90, 255}
	activeOpColor    = color.NRGBA{160, 90, 90, 255}
	backgroundColor  = color.NRGBA{50, 50, 50, 255}
	resultColor      = color.NRGBA{255, 255, 255, 255}
	errorColor       = color.NRGBA{230, 120, 110, 255}
	resultBackground = color.NRGBA{35, 35, 35, 255}

	designWidth  = unit.Dp(270)
	designHeight = unit.Dp(345)
	controlInset = unit.Dp(6)
	cornerRadius = unit.Dp(3.5)
)

// calcUI is the user interface of the calculator.
type calcUI struct {
	calc    *dispatch.Dispatcher
	theme   *material.Theme
	buttons [5][4]*button

	// Display state, written by the dispatcher event goroutine.
	mu      sync.Mutex
	text    string
	lastErr string

	cornerRadius int
	gridSpacing  int
}

func newUI(theme *material.Theme, calc *dispatch.Dispatcher) *calcUI {
	ui := &calcUI{theme: theme, calc: calc}
	ui.buttons = [5][4]*button{
		{ui.special("C", dispatch.KeyClear), ui.special("⌫", dispatch.KeyBackspace), ui.special("%", "%"), ui.op("/")},
		{ui.digit("7"), ui.digit("8"), ui.digit("9"), ui.op("*")},
		{ui.digit("4"), ui.digit("5"), ui.digit("6"), ui.op("-")},
		{ui.digit("1"), ui.digit("2"), ui.digit("3"), ui.op("+")},
		{ui.digit("0"), nil, ui.digit("."), ui.op("=")},
	}
	return ui
}

// digit creates a digit button.
func (ui *calcUI) digit(input string) *button {
	return newButton(input, input, digitColor)
}

// op creates an operation button.
func (ui *calcUI) op(op string) *button {
	b := newButton(op, op, opColor)
	b.isOp = op != "="
	return b
}

// special creates a special operation button.
func (ui *calcUI) special(name, key string) *button {
	return newButton(name, key, specialColor)
}

// press sends the command of a calculator key.
func (ui *calcUI) press(key string) {
	if cmd := dispatch.KeyCommand(key); cmd != nil {
		ui.calc.Send(cmd)
	}
}

// handleCalcEvent applies a dispatcher event to the display state.
func (ui *calcUI) handleCalcEvent(e dispatch.Event) {
	ui.mu.Lock()
	defer ui.mu.Unlock()

	switch e := e.(type) {
	case *dispatch.TextChanged:
		ui.text = e.Text
		ui.lastErr = ""
	case *dispatch.Result:
		ui.lastErr = ""
	case *dispatch.Failure:
		ui.lastErr = e.Err.Error()
	case *dispatch.IOError:
		log.Printf("calculator I/O error: %v", e.Err)
	}
}

// display returns the current expression and error message.
func (ui *calcUI) display() (text, lastErr string) {
	ui.mu.Lock()
	defer ui.mu.Unlock()
	return ui.text, ui.lastErr
}

// Layout draws the UI.
func (ui *calcUI) Layout(gtx layout.Context) layout.Dimensions {
	// Adapt design for screen size.
	scaleFactor := float32(gtx.Constraints.Max.X) / float32(gtx.Dp(designWidth))
	ui.cornerRadius = gtx.Dp(cornerRadius * unit.Dp(scaleFactor))
	ui.gridSpacing = gtx.Dp(controlInset * unit.Dp(scaleFactor))

	// Handle key events.
	ui.layoutInput(gtx)

	inset := layout.UniformInset(controlInset)
	return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		flex := layout.Flex{Axis: layout.Vertical, Spacing: layout.SpaceStart}
		return flex.Layout(gtx,
			layout.Flexed(20, func(gtx layout.Context) layout.Dimensions {
				return inset.Layout(gtx, ui.layoutResult)
			}),
			layout.Flexed(70, func(gtx layout.Context) layout.Dimensions {
				return inset.Layout(gtx, ui.layoutButtons)
			}),
		)
	})
}

func (ui *calcUI) layoutResult(gtx layout.Context) layout.Dimensions {
	rect := image.Rectangle{Max: gtx.Constraints.Max}
	rr := clip.UniformRRect(rect, ui.cornerRadius)
	paint.FillShape(gtx.Ops, resultBackground, rr.Op(gtx.Ops))

	inset := layout.UniformInset(controlInset)
	return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		flex := layout.Flex{Axis: layout.Vertical}
		return flex.Layout(gtx,
			layout.Flexed(75, ui.layoutResultText),
			layout.Flexed(25, ui.layoutErrorText),
		)
	})
}

func (ui *calcUI) layoutResultText(gtx layout.Context) layout.Dimensions {
	// Scale font based on height.
	fontSizePx := float32(gtx.Constraints.Max.Y) / 1.1
	fontSizeSp := unit.Sp(fontSizePx / gtx.Metric.PxPerSp)

	txt, _ := ui.display()
	if txt == "" {
		txt = "0"
	}
	l := material.Label(ui.theme, fontSizeSp, txt)
	l.Color = resultColor
	l.Alignment = text.End
	return shrinkToFit(gtx, l.Layout)
}

func (ui *calcUI) layoutErrorText(gtx layout.Context) layout.Dimensions {
	_, lastErr := ui.display()
	if lastErr == "" {
		return layout.Dimensions{Size: gtx.Constraints.Max}
	}
	fontSizePx := float32(gtx.Constraints.Max.Y) / 1.3
	fontSizeSp := unit.Sp(fontSizePx / gtx.Metric.PxPerSp)

	l := material.Label(ui.theme, fontSizeSp, lastErr)
	l.Color = errorColor
	l.Alignment = text.End
	return shrinkToFit(gtx, l.Layout)
}

func (ui *calcUI) layoutButtons(gtx layout.Context) layout.Dimensions {
	g := grid{
		rows:    len(ui.buttons),
		cols:    len(ui.buttons[0]),
		spacing: ui.gridSpacing,
	}
	txt, _ := ui.display()
	return g.layout(gtx, func(row, col int, gtx layout.Context) layout.Dimensions {
		if b := ui.buttons[row][col]; b != nil {
			return ui.layoutButton(gtx, b, txt)
		}
		return layout.Dimensions{}
	})
}

func (ui *calcUI) layoutButton(gtx layout.Context, b *button, txt string) layout.Dimensions {
	for b.clicker.Clicked(gtx) {
		ui.press(b.key)
	}

	return b.clicker.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		textSizePx := float32(gtx.Constraints.Max.Y) / 2.2
		textSizeSp := unit.Sp(textSizePx / gtx.Metric.PxPerSp)

		style := material.Button(ui.theme, &b.clicker, b.text)
		style.Background = b.color
		style.Inset = layout.Inset{}
		style.TextSize = textSizeSp
		style.CornerRadius = unit.Dp(float32(ui.cornerRadius) / gtx.Metric.PxPerDp)
		if b.isOp && strings.HasSuffix(txt, b.key) {
			style.Background = activeOpColor
		}
		return style.Layout(gtx)
	})
}

// layoutInput registers the global key handler.
func (ui *calcUI) layoutInput(gtx layout.Context) {
	// Register handler for key events.
	input := key.InputOp{
		Tag:  ui,
		Hint: key.HintNumeric,
		Keys: "Short-[C,V]|(Shift)-[0,1,2,3,4,5,6,7,8,9,.,+,-,*,/,%,=,⌤,⏎,⌫,⌦,⎋]",
	}
	input.Add(gtx.Ops)

	// Request keyboard focus. This is required to make the Return key work.
	key.FocusOp{Tag: ui}.Add(gtx.Ops)

	for _, ev := range gtx.Events(ui) {
		switch ev := ev.(type) {
		case key.Event:
			switch {
			case isCopy(ev):
				txt, _ := ui.display()
				clipboard.WriteOp{Text: txt}.Add(gtx.Ops)
			case isPaste(ev):
				clipboard.ReadOp{Tag: ui}.Add(gtx.Ops)
			default:
				ui.handleKey(ev)
			}

		case clipboard.Event:
			ui.calc.Send(&dispatch.Paste{Text: ev.Text})
		}
	}
}

func isCopy(e key.Event) bool {
	return e.Name == "C" && e.Modifiers.Contain(key.ModShortcut)
}

func isPaste(e key.Event) bool {
	return e.Name == "V" && e.Modifiers.Contain(key.ModShortcut)
}

// handleKey handles a key event.
func (ui *calcUI) handleKey(e key.Event) {
	if e.State == key.Release {
		return
	}
	ui.press(calcKey(e.Name))
}

// calcKey translates a key name to the calculator's key names.
func calcKey(name string) string {
	switch name {
	case key.NameEnter, key.NameReturn:
		return "="
	case key.NameDeleteBackward, key.NameDeleteForward:
		return dispatch.KeyBackspace
	case key.NameEscape:
		return dispatch.KeyClear
	default:
		return name
	}
}

// button is a clickable button.
type button struct {
	key  string
	text string
	isOp bool

	color   color.NRGBA
	clicker widget.Clickable
}

func newButton(text, key string, color color.NRGBA) *button {
	return &button{text: text, key: key, color: color}
}

func main() {
	var (
		size     = app.Size(designWidth, designHeight)
		statusBg = app.StatusColor(backgroundColor)
		sysBg    = app.NavigationColor(backgroundColor)
		title    = app.Title("GioCalc")
		portrait = app.PortraitOrientation.Option()
	)
	go func() {
		w := app.NewWindow(statusBg, sysBg, size, title, portrait)
		w.Option(app.MinSize(designWidth, designHeight))

		if err := loop(w); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

// loop is the main loop of the app.
func loop(w *app.Window) error {
	calc := dispatch.New()
	defer calc.Close()

	var (
		th   = material.NewTheme()
		ui   = newUI(th, calc)
		ops  op.Ops
		quit = make(chan struct{})
	)
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	defer close(quit)

	// Apply calculator events and redraw.
	go func() {
		for {
			select {
			case e := <-calc.Events():
				ui.handleCalcEvent(e)
				w.Invalidate()
			case <-quit:
				return
			}
		}
	}()

	for {
		switch e := w.NextEvent().(type) {
		case system.DestroyEvent:
			return e.Err
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			paint.Fill(gtx.Ops, backgroundColor)
			ui.Layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}
