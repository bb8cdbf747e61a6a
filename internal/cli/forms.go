package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/metis/internal/cli/formatter"
	"github.com/alexanderramin/metis/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// metisHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func metisHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// profileInput accumulates raw form values before they are parsed into an
// OrganizationProfile.
type profileInput struct {
	Industry    string
	CompanySize string
	Employees   string
	Revenue     string
	Region      string
}

// profileForm builds the organization profile form.
func profileForm(in *profileInput) *huh.Form {
	industryOpts := []huh.Option[string]{
		huh.NewOption("Healthcare", string(domain.IndustryHealthcare)),
		huh.NewOption("Finance", string(domain.IndustryFinance)),
		huh.NewOption("Manufacturing", string(domain.IndustryManufacturing)),
		huh.NewOption("Retail", string(domain.IndustryRetail)),
		huh.NewOption("Technology", string(domain.IndustryTechnology)),
		huh.NewOption("Other", string(domain.IndustryOther)),
	}
	sizeOpts := []huh.Option[string]{
		huh.NewOption("Small (1-50)", string(domain.SizeSmall)),
		huh.NewOption("Medium (51-500)", string(domain.SizeMedium)),
		huh.NewOption("Large (501-5000)", string(domain.SizeLarge)),
		huh.NewOption("Enterprise (5000+)", string(domain.SizeEnterprise)),
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Industry").
				Options(industryOpts...).
				Value(&in.Industry),
			huh.NewSelect[string]().
				Title("Company Size").
				Options(sizeOpts...).
				Value(&in.CompanySize),
			huh.NewInput().
				Title("Employee Count (optional)").
				Placeholder("250").
				Value(&in.Employees).
				Validate(validateOptionalPositiveInt),
			huh.NewInput().
				Title("Annual Revenue in USD (optional)").
				Placeholder("5000000").
				Value(&in.Revenue).
				Validate(validateOptionalPositiveFloat),
			huh.NewInput().
				Title("Region (optional)").
				Placeholder("EU").
				Value(&in.Region),
		),
	).WithTheme(metisHuhTheme()).WithShowHelp(false)
}

// toProfile converts raw form values into a validated profile.
func (in *profileInput) toProfile() (domain.OrganizationProfile, error) {
	p := domain.OrganizationProfile{
		Industry:    domain.Industry(in.Industry),
		CompanySize: domain.CompanySize(in.CompanySize),
		Region:      in.Region,
	}
	if in.Employees != "" {
		v, err := strconv.Atoi(in.Employees)
		if err != nil {
			return p, fmt.Errorf("employee count: %w", err)
		}
		p.EmployeeCount = v
	}
	if in.Revenue != "" {
		v, err := strconv.ParseFloat(in.Revenue, 64)
		if err != nil {
			return p, fmt.Errorf("annual revenue: %w", err)
		}
		p.AnnualRevenue = v
	}
	return p, p.Validate()
}

// confirmForm builds a single yes/no confirmation.
func confirmForm(title string, value *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(value),
		),
	).WithTheme(metisHuhTheme()).WithShowHelp(false)
}

// validateOptionalPositiveInt accepts empty or a positive integer.
func validateOptionalPositiveInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

// validateOptionalPositiveFloat accepts empty or a positive number.
func validateOptionalPositiveFloat(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}
