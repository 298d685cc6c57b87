package terminal

import (
	"fmt"
	"io"

	"github.com/gookit/color"

	"bmi/internal/domain"
)

// Presenter writes the banner and the result block.
type Presenter struct {
	out   io.Writer
	color bool
}

// NewPresenter creates a Presenter writing to out. When useColor is set the
// category label is coloured; the surrounding text never changes.
func NewPresenter(out io.Writer, useColor bool) *Presenter {
	return &Presenter{out: out, color: useColor}
}

// Banner writes the welcome banner.
func (p *Presenter) Banner() error {
	_, err := fmt.Fprint(p.out, "Welcome to the BMI Calculator!\n--------------------------------\n")
	return err
}

// Present writes the result block with the BMI rounded to two decimals.
func (p *Presenter) Present(r domain.Result) error {
	_, err := fmt.Fprintf(p.out,
		"\n--- Your Results ---\nYour BMI is: %.2f\nThis is considered: %s\n--------------------\n",
		r.BMI, p.category(r.Category))
	return err
}

func (p *Presenter) category(c domain.Category) string {
	if !p.color {
		return string(c)
	}
	switch c {
	case domain.CategoryNormal:
		return color.Green.Sprint(string(c))
	case domain.CategoryUnderweight, domain.CategoryOverweight:
		return color.Yellow.Sprint(string(c))
	default:
		return color.Red.Sprint(string(c))
	}
}
