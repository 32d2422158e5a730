// Package timetable exposes the timetable views over HTTP.
package timetable

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/rozvrh-svg/rozvrh/core/model"
	tt "github.com/rozvrh-svg/rozvrh/core/timetable"
)

// ContentType is sent with every rendered document.
const ContentType = "image/svg+xml"

var startLayouts = []string{"2006-01-02", "2006-01-02 15:04:05", "2006-01-02T15:04:05", time.RFC3339}

var validate = validator.New()

// WeeklyRenderer builds weekly views.
type WeeklyRenderer interface {
	Weekly(ctx context.Context, q tt.WeeklyQuery) (tt.Result, error)
}

// SemesterRenderer builds semester overviews.
type SemesterRenderer interface {
	Semester(ctx context.Context, q tt.SemesterQuery) (tt.Result, error)
}

// SemesterDefaults fill in what a semester request leaves out.
type SemesterDefaults struct {
	Start time.Time
	End   time.Time
	Group string
}

type weeklyRequest struct {
	Type     string `validate:"required,oneof=S T C s t c"`
	FilterID string `validate:"required"`
	Start    string
}

type semesterRequest struct {
	Type     string `validate:"omitempty,oneof=S T C s t c"`
	FilterID string
	Start    string
	End      string
}

// errBadRequest marks failures caused by the request itself.
var errBadRequest = errors.New("bad request")

// NewWeeklyHandler serves GET /svg/?type=&filterID=&start=. Without start the
// current week is shown. now may be nil.
func NewWeeklyHandler(r WeeklyRenderer, now func() time.Time) http.Handler {
	if now == nil {
		now = time.Now
	}
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		q := req.URL.Query()
		in := weeklyRequest{Type: q.Get("type"), FilterID: q.Get("filterID"), Start: q.Get("start")}
		query, err := in.query(now())
		if err != nil {
			writeError(w, err)
			return
		}
		res, err := r.Weekly(req.Context(), query)
		if err != nil {
			writeError(w, err)
			return
		}
		writeSVG(w, res)
	})
}

func (in weeklyRequest) query(now time.Time) (tt.WeeklyQuery, error) {
	if err := validate.Struct(in); err != nil {
		return tt.WeeklyQuery{}, fmt.Errorf("%w: %v", errBadRequest, err)
	}
	class, err := model.ParseEntityClass(in.Type)
	if err != nil {
		return tt.WeeklyQuery{}, err
	}
	start := tt.WeekStart(now)
	if in.Start != "" {
		if start, err = parseDate(in.Start); err != nil {
			return tt.WeeklyQuery{}, err
		}
	}
	return tt.WeeklyQuery{Class: class, ID: in.FilterID, Start: start}, nil
}

// NewSemesterHandler serves GET /svgs/?start=&end=&type=&filterID=. Missing
// values come from def; without type and filterID the default group is shown.
func NewSemesterHandler(r SemesterRenderer, def SemesterDefaults) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		q := req.URL.Query()
		in := semesterRequest{Type: q.Get("type"), FilterID: q.Get("filterID"), Start: q.Get("start"), End: q.Get("end")}
		query, err := in.query(def)
		if err != nil {
			writeError(w, err)
			return
		}
		res, err := r.Semester(req.Context(), query)
		if err != nil {
			writeError(w, err)
			return
		}
		writeSVG(w, res)
	})
}

func (in semesterRequest) query(def SemesterDefaults) (tt.SemesterQuery, error) {
	if err := validate.Struct(in); err != nil {
		return tt.SemesterQuery{}, fmt.Errorf("%w: %v", errBadRequest, err)
	}
	out := tt.SemesterQuery{Class: model.ClassGroup, ID: def.Group, Start: def.Start, End: def.End}
	if in.Type != "" {
		class, err := model.ParseEntityClass(in.Type)
		if err != nil {
			return tt.SemesterQuery{}, err
		}
		out.Class = class
		out.ID = ""
	}
	if in.FilterID != "" {
		out.ID = in.FilterID
	}
	if out.ID == "" {
		return tt.SemesterQuery{}, fmt.Errorf("%w: filterID is required with type", errBadRequest)
	}
	var err error
	if in.Start != "" {
		if out.Start, err = parseDate(in.Start); err != nil {
			return tt.SemesterQuery{}, err
		}
	}
	if in.End != "" {
		if out.End, err = parseDate(in.End); err != nil {
			return tt.SemesterQuery{}, err
		}
	}
	if out.End.Before(out.Start) {
		return tt.SemesterQuery{}, fmt.Errorf("%w: end before start", errBadRequest)
	}
	return out, nil
}

// NewHealthHandler answers GET /health with OK.
func NewHealthHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("OK"))
	})
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range startLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: invalid date %q", errBadRequest, s)
}

func writeSVG(w http.ResponseWriter, res tt.Result) {
	w.Header().Set("Content-Type", ContentType)
	_, _ = w.Write([]byte(res.SVG()))
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, errBadRequest) || errors.Is(err, model.ErrInvalidEntityClass) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Error(w, "render failed", http.StatusInternalServerError)
}
