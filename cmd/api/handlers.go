package main

import (
	"io"
	"net/http"

	"text-summarizer/internal/app"
	"text-summarizer/internal/httputil"
	"text-summarizer/internal/service"
)

func summarizeHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req service.SummarizeRequest
		if err := httputil.DecodeJSON(r, &req); err != nil {
			httputil.FailWith(deps.Log, w, err)
			return
		}
		res, err := deps.Service.Summarize(r.Context(), req)
		if err != nil {
			httputil.FailWith(deps.Log, w, err)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, res)
	}
}

func summarizeURLHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req service.SummarizeURLRequest
		if err := httputil.DecodeJSON(r, &req); err != nil {
			httputil.FailWith(deps.Log, w, err)
			return
		}
		res, err := deps.Service.SummarizeURL(r.Context(), req)
		if err != nil {
			httputil.FailWith(deps.Log.With("url", req.URL), w, err)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, res)
	}
}

func extractKeywordsHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req service.KeywordRequest
		if err := httputil.DecodeJSON(r, &req); err != nil {
			httputil.FailWith(deps.Log, w, err)
			return
		}
		res, err := deps.Service.ExtractKeywords(r.Context(), req)
		if err != nil {
			httputil.FailWith(deps.Log, w, err)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, res)
	}
}

func summarizePDFHandler(deps app.Deps) http.HandlerFunc {
	maxFileSize := deps.Config.MaxUploadSize

	return func(w http.ResponseWriter, r *http.Request) {
		// Validate file size before parsing
		if r.ContentLength > maxFileSize {
			httputil.Fail(deps.Log, w, "File too large", nil, http.StatusBadRequest)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			httputil.Fail(deps.Log, w, "No file provided", err, http.StatusBadRequest)
			return
		}
		defer file.Close()

		if header.Size > maxFileSize {
			httputil.Fail(deps.Log, w, "File too large", nil, http.StatusBadRequest)
			return
		}

		content, err := io.ReadAll(file)
		if err != nil {
			httputil.Fail(deps.Log, w, "Failed to read file", err, http.StatusInternalServerError)
			return
		}

		res, err := deps.Service.SummarizePDF(r.Context(), service.SummarizePDFRequest{
			Filename: header.Filename,
			Content:  content,
		})
		if err != nil {
			httputil.FailWith(deps.Log.With("filename", header.Filename), w, err)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, res)
	}
}
