package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/matzehuels/seatsort/pkg/buildinfo"
	"github.com/matzehuels/seatsort/pkg/dataset"
	apperrors "github.com/matzehuels/seatsort/pkg/errors"
	seatio "github.com/matzehuels/seatsort/pkg/io"
	"github.com/matzehuels/seatsort/pkg/pipeline"
	"github.com/matzehuels/seatsort/pkg/source"
)

// RandomRequest asks the server to generate the dataset.
type RandomRequest struct {
	Count int    `json:"count"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
	Seed  uint64 `json:"seed,omitempty"`
}

// DataRequest carries the dataset: either explicit values or a random
// generation request.
type DataRequest struct {
	Values []int          `json:"values,omitempty"`
	Random *RandomRequest `json:"random,omitempty"`
}

// SeatRequest is the body of POST /v1/seatmap.
type SeatRequest struct {
	DataRequest

	Options pipeline.Options `json:"options"`

	// Insert lists values inserted one by one after sorting. The grid is
	// seated again from the partitions as they stand after the last insert.
	Insert []int `json:"insert,omitempty"`
}

// SeatResponse is the run report plus any rendered text artifacts.
type SeatResponse struct {
	seatio.Report
	Artifacts map[string]string `json:"artifacts,omitempty"`
}

// BenchResponse is the body returned by POST /v1/bench.
type BenchResponse struct {
	Count   int                    `json:"count"`
	Results []pipeline.BenchResult `json:"results"`
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    apperrors.Code `json:"code"`
	Message string         `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"build":  buildinfo.Get(),
	})
}

func (s *Server) handleSeatMap(w http.ResponseWriter, r *http.Request) {
	var req SeatRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	ds, err := req.dataset()
	if err != nil {
		s.writeError(w, err)
		return
	}

	// Formats are held back so they render the grid as it stands after
	// the inserts.
	opts := req.Options
	formats := opts.Formats
	opts.Formats = nil
	opts.Logger = s.logger
	if err := opts.ValidateAndSetDefaults(); err != nil {
		s.writeError(w, err)
		return
	}
	if err := pipeline.ValidateFormats(formats); err != nil {
		s.writeError(w, err)
		return
	}

	ctx := r.Context()
	result, err := s.runner.Execute(ctx, ds, opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	if len(req.Insert) > 0 {
		for _, v := range req.Insert {
			if err := ds.Insert(v); err != nil {
				s.writeError(w, err)
				return
			}
		}
		result.Odd, result.Even = ds.Odd(), ds.Even()
		result.Stats.Count = ds.Len()
		if result.Grid, err = s.runner.Seat(ctx, result.Odd, result.Even, opts.Layout); err != nil {
			s.writeError(w, err)
			return
		}
	}

	opts.Formats = formats
	artifacts, err := s.runner.Render(result, opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp := SeatResponse{Report: result.Report(opts)}
	if len(artifacts) > 0 {
		resp.Artifacts = make(map[string]string, len(artifacts))
		for format, data := range artifacts {
			resp.Artifacts[format] = string(data)
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleBench(w http.ResponseWriter, r *http.Request) {
	var req DataRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	ds, err := req.dataset()
	if err != nil {
		s.writeError(w, err)
		return
	}

	results, err := s.runner.BenchAll(r.Context(), ds)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, BenchResponse{Count: ds.Len(), Results: results})
}

// dataset builds a fresh dataset for one request.
func (d DataRequest) dataset() (*dataset.Dataset, error) {
	switch {
	case d.Random != nil && len(d.Values) > 0:
		return nil, apperrors.New(apperrors.ErrCodeInvalidInput, "give either values or random, not both")
	case d.Random != nil:
		values, err := source.Random(d.Random.Count, d.Random.Min, d.Random.Max, d.Random.Seed)
		if err != nil {
			return nil, err
		}
		return dataset.New(values...)
	default:
		return dataset.New(d.Values...)
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "decode request body")
	}
	return nil
}

// statusFor maps an error code onto an HTTP status.
func statusFor(code apperrors.Code) int {
	switch code {
	case apperrors.ErrCodeInvalidInput, apperrors.ErrCodeInvalidFormat, apperrors.ErrCodeInvalidConfiguration:
		return http.StatusBadRequest
	case apperrors.ErrCodeInsufficientData, apperrors.ErrCodeCapacityExceeded:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := apperrors.GetCode(err)
	if code == "" {
		code = apperrors.ErrCodeInternal
	}
	status := statusFor(code)

	msg := apperrors.UserMessage(err)
	var coded *apperrors.Error
	if !errors.As(err, &coded) {
		msg = "internal error"
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
	}
	writeJSON(w, status, errorBody{Error: errorDetail{Code: code, Message: msg}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
