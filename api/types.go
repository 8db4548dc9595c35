package api

import (
	"errors"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/bcheng/portfolio-backend/errs"
)

// Create payloads validate required fields with ozzo-validation; update
// payloads use pointer fields so only keys present in the body overwrite
// stored values. Slug and id are never accepted from update bodies.

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (p loginRequest) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Username, validation.Required),
		validation.Field(&p.Password, validation.Required),
	)
}

type projectCreate struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ShortDesc   *string  `json:"shortDesc"`
	Tags        []string `json:"tags"`
	Category    string   `json:"category"`
	ImageURL    *string  `json:"imageUrl"`
	GithubURL   *string  `json:"githubUrl"`
	LiveURL     *string  `json:"liveUrl"`
	Featured    bool     `json:"featured"`
	Published   *bool    `json:"published"`
	Order       int      `json:"order"`
}

func (p projectCreate) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.Description, validation.Required),
		validation.Field(&p.Category, validation.Required),
	)
}

type projectUpdate struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	ShortDesc   *string   `json:"shortDesc"`
	Tags        *[]string `json:"tags"`
	Category    *string   `json:"category"`
	ImageURL    *string   `json:"imageUrl"`
	GithubURL   *string   `json:"githubUrl"`
	LiveURL     *string   `json:"liveUrl"`
	Featured    *bool     `json:"featured"`
	Published   *bool     `json:"published"`
	Order       *int      `json:"order"`
}

type skillCreate struct {
	Title     string  `json:"title"`
	Category  string  `json:"category"`
	Icon      *string `json:"icon"`
	Rating    int     `json:"rating"`
	Published *bool   `json:"published"`
	Order     int     `json:"order"`
}

func (p skillCreate) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.Category, validation.Required),
		validation.Field(&p.Rating, validation.Min(0), validation.Max(5)),
	)
}

type skillUpdate struct {
	Title     *string `json:"title"`
	Category  *string `json:"category"`
	Icon      *string `json:"icon"`
	Rating    *int    `json:"rating"`
	Published *bool   `json:"published"`
	Order     *int    `json:"order"`
}

type aboutSectionCreate struct {
	Key       string `json:"key"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Published *bool  `json:"published"`
	Order     int    `json:"order"`
}

func (p aboutSectionCreate) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Key, validation.Required),
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.Content, validation.Required),
	)
}

type aboutSectionUpdate struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Published *bool   `json:"published"`
	Order     *int    `json:"order"`
}

type contactCreate struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
	Subject   *string `json:"subject"`
	Message   string  `json:"message"`
}

func (p contactCreate) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.FirstName, validation.Required),
		validation.Field(&p.LastName, validation.Required),
		validation.Field(&p.Email, validation.Required, is.EmailFormat),
		validation.Field(&p.Message, validation.Required),
	)
}

type contactUpdate struct {
	Read *bool `json:"read"`
}

type experienceCreate struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    *string  `json:"location"`
	Type        string   `json:"type"`
	StartDate   string   `json:"startDate"`
	EndDate     *string  `json:"endDate"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	Published   *bool    `json:"published"`
	Order       int      `json:"order"`
}

func (p experienceCreate) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.Company, validation.Required),
		validation.Field(&p.StartDate, validation.Required),
		validation.Field(&p.Description, validation.Required),
	)
}

type experienceUpdate struct {
	Title       *string   `json:"title"`
	Company     *string   `json:"company"`
	Location    *string   `json:"location"`
	Type        *string   `json:"type"`
	StartDate   *string   `json:"startDate"`
	EndDate     *string   `json:"endDate"`
	Description *string   `json:"description"`
	Skills      *[]string `json:"skills"`
	Published   *bool     `json:"published"`
	Order       *int      `json:"order"`
}

type educationCreate struct {
	Title       string  `json:"title"`
	School      string  `json:"school"`
	Location    *string `json:"location"`
	StartDate   string  `json:"startDate"`
	EndDate     *string `json:"endDate"`
	Description *string `json:"description"`
	Published   *bool   `json:"published"`
	Order       int     `json:"order"`
}

func (p educationCreate) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.School, validation.Required),
		validation.Field(&p.StartDate, validation.Required),
	)
}

type educationUpdate struct {
	Title       *string `json:"title"`
	School      *string `json:"school"`
	Location    *string `json:"location"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
	Description *string `json:"description"`
	Published   *bool   `json:"published"`
	Order       *int    `json:"order"`
}

type categoryCreate struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Order int    `json:"order"`
}

func (p categoryCreate) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Key, validation.Required),
		validation.Field(&p.Label, validation.Required),
	)
}

type categoryUpdate struct {
	Label *string `json:"label"`
	Order *int    `json:"order"`
}

type socialLinkCreate struct {
	Platform  string  `json:"platform"`
	URL       string  `json:"url"`
	Icon      *string `json:"icon"`
	Published *bool   `json:"published"`
	Order     int     `json:"order"`
}

func (p socialLinkCreate) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Platform, validation.Required),
		validation.Field(&p.URL, validation.Required, is.URL),
	)
}

type socialLinkUpdate struct {
	Platform  *string `json:"platform"`
	URL       *string `json:"url"`
	Icon      *string `json:"icon"`
	Published *bool   `json:"published"`
	Order     *int    `json:"order"`
}

type siteConfigCreate struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func (p siteConfigCreate) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Key, validation.Required),
		validation.Field(&p.Value, validation.Required),
	)
}

type siteConfigUpdate struct {
	Value *string `json:"value"`
}

// asValidationError converts an ozzo validation result into a 400 ApiErr
// carrying per-field messages.
func asValidationError(err error) *errs.ApiErr {
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		fields := make(map[string]string, len(fieldErrs))
		for field, ferr := range fieldErrs {
			fields[field] = ferr.Error()
		}
		return errs.NewValidationError(err.Error(), fields)
	}
	return errs.NewBadRequestError(err.Error())
}

// parseDate accepts plain dates and RFC 3339 timestamps from form payloads.
func parseDate(value string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", value)
}
