package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"log/slog"

	"github.com/ylchen07/jira-api/internal/atlassian"
	"github.com/ylchen07/jira-api/internal/jira"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "jira-api",
	})
}

func (s *Server) handleGetIssue(w http.ResponseWriter, r *http.Request) {
	issue, err := s.service.GetIssue(r.Context(), r.PathValue("key"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, issue)
}

// createIssueRequest is the write-only creation DTO. Either the ID pair
// (projectId + issueTypeId) or the name pair (projectKey + issueTypeName)
// must be provided.
type createIssueRequest struct {
	ProjectID         string   `json:"projectId"`
	ProjectKey        string   `json:"projectKey"`
	Summary           string   `json:"summary"`
	IssueTypeID       string   `json:"issueTypeId"`
	IssueTypeName     string   `json:"issueTypeName"`
	Description       string   `json:"description"`
	PriorityID        string   `json:"priorityId"`
	AssigneeAccountID string   `json:"assigneeAccountId"`
	AssigneeEmail     string   `json:"assigneeEmail"`
	ReporterAccountID string   `json:"reporterAccountId"`
	Labels            []string `json:"labels"`
}

func (s *Server) handleCreateIssue(w http.ResponseWriter, r *http.Request) {
	var req createIssueRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	var (
		issue *jira.Issue
		err   error
	)

	if req.IssueTypeName != "" {
		issue, err = s.service.CreateIssueByTypeName(r.Context(), req.ProjectKey, jira.NewIssue{
			Summary:       req.Summary,
			IssueTypeName: req.IssueTypeName,
			Description:   req.Description,
			PriorityID:    req.PriorityID,
			AssigneeEmail: req.AssigneeEmail,
			Labels:        req.Labels,
		})
	} else {
		issue, err = s.service.CreateIssue(r.Context(), jira.IssueCreate{
			ProjectID:         req.ProjectID,
			Summary:           req.Summary,
			IssueTypeID:       req.IssueTypeID,
			Description:       req.Description,
			PriorityID:        req.PriorityID,
			AssigneeAccountID: req.AssigneeAccountID,
			ReporterAccountID: req.ReporterAccountID,
			Labels:            req.Labels,
		})
	}

	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, issue)
}

// updateIssueRequest is a delta DTO: absent fields mean "no change".
type updateIssueRequest struct {
	Summary      *string  `json:"summary"`
	Description  *string  `json:"description"`
	LabelsAdd    []string `json:"labelsAdd"`
	LabelsRemove []string `json:"labelsRemove"`
	PriorityID   *string  `json:"priorityId"`
}

func (s *Server) handleUpdateIssue(w http.ResponseWriter, r *http.Request) {
	var req updateIssueRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	update := jira.IssueUpdate{
		LabelsAdd:    req.LabelsAdd,
		LabelsRemove: req.LabelsRemove,
	}
	if req.Summary != nil {
		update.Summary = jira.Set(*req.Summary)
	}
	if req.Description != nil {
		update.Description = jira.Set(*req.Description)
	}
	if req.PriorityID != nil {
		update.PriorityID = jira.Set(*req.PriorityID)
	}

	if err := s.service.UpdateIssue(r.Context(), r.PathValue("key"), update); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "issue updated"})
}

// assignIssueRequest keeps the unset / null / value distinction: an absent
// accountId is rejected, a literal null unassigns, a string assigns.
type assignIssueRequest struct {
	AccountID json.RawMessage `json:"accountId"`
	Email     string          `json:"email"`
}

func (s *Server) handleAssignIssue(w http.ResponseWriter, r *http.Request) {
	var req assignIssueRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	key := r.PathValue("key")

	if req.Email != "" {
		if err := s.service.AssignIssueByEmail(r.Context(), key, req.Email); err != nil {
			s.writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "issue assigned"})
		return
	}

	assignment := jira.Assignment{}
	switch {
	case len(req.AccountID) == 0:
		// leave unset; the service rejects it
	case bytes.Equal(req.AccountID, []byte("null")):
		assignment.AccountID = jira.Null[string]()
	default:
		var id string
		if err := json.Unmarshal(req.AccountID, &id); err != nil {
			s.writeError(w, atlassian.InvalidInput("accountId must be a string or null"))
			return
		}
		assignment.AccountID = jira.Set(id)
	}

	if err := s.service.AssignIssue(r.Context(), key, assignment); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "issue assigned"})
}

func (s *Server) handleListTransitions(w http.ResponseWriter, r *http.Request) {
	transitions, err := s.service.ListTransitions(r.Context(), r.PathValue("key"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"transitions": transitions})
}

type transitionIssueRequest struct {
	TransitionID   string `json:"transitionId"`
	TransitionName string `json:"transitionName"`
	Comment        string `json:"comment"`
	ResolutionName string `json:"resolutionName"`
}

func (s *Server) handleTransitionIssue(w http.ResponseWriter, r *http.Request) {
	var req transitionIssueRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	key := r.PathValue("key")

	var err error
	if req.TransitionName != "" {
		err = s.service.TransitionIssueByName(r.Context(), key, req.TransitionName, req.Comment, req.ResolutionName)
	} else {
		err = s.service.TransitionIssue(r.Context(), key, jira.TransitionRequest{
			TransitionID:   req.TransitionID,
			Comment:        req.Comment,
			ResolutionName: req.ResolutionName,
		})
	}

	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "issue transitioned"})
}

type addCommentRequest struct {
	Body string `json:"body"`
}

func (s *Server) handleAddComment(w http.ResponseWriter, r *http.Request) {
	var req addCommentRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	if err := s.service.AddComment(r.Context(), r.PathValue("key"), req.Body); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": "comment added"})
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	project, err := s.service.GetProject(r.Context(), r.PathValue("key"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

func (s *Server) handleListVersions(w http.ResponseWriter, r *http.Request) {
	filter := jira.AllVersions
	if released := r.URL.Query().Get("released"); released != "" {
		value, err := strconv.ParseBool(released)
		if err != nil {
			s.writeError(w, atlassian.InvalidInput("released must be true or false"))
			return
		}
		if value {
			filter = jira.ReleasedOnly
		} else {
			filter = jira.UnreleasedOnly
		}
	}

	versions, err := s.service.ProjectVersions(r.Context(), r.PathValue("key"), filter)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, versions)
}

func (s *Server) handleCreateVersion(w http.ResponseWriter, r *http.Request) {
	var req jira.VersionCreate
	if !s.decodeBody(w, r, &req) {
		return
	}

	version, err := s.service.CreateVersion(r.Context(), r.PathValue("key"), req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, version)
}

func (s *Server) handleSearchUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		s.writeError(w, atlassian.InvalidInput("query parameter required"))
		return
	}

	maxResults := 0
	if raw := r.URL.Query().Get("maxResults"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			s.writeError(w, atlassian.InvalidInput("maxResults must be an integer"))
			return
		}
		maxResults = value
	}

	users, err := s.service.SearchUsers(r.Context(), query, maxResults)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.service.UserByIdentifier(r.Context(), r.PathValue("identifier"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, out any) bool {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		s.writeError(w, atlassian.InvalidInput("parse request body: %v", err))
		return false
	}
	return true
}

// writeError maps taxonomy kinds onto HTTP statuses: kinds that carry a
// status keep it; transport and decode failures become 500-equivalents.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	var apiErr *atlassian.Error
	if errors.As(err, &apiErr) && apiErr.StatusCode != 0 {
		status = apiErr.StatusCode
	}

	s.logger.Warn("request failed", slog.Int("status", status), slog.Any("error", err))
	writeJSON(w, status, map[string]string{"detail": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
