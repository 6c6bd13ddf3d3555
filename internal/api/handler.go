package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"ensgraph/internal/ens"
	"ensgraph/internal/store"
)

type handler struct {
	store   store.Store
	startAt time.Time
}

func newHandler(st store.Store) *handler {
	return &handler{store: st, startAt: time.Now()}
}

type RelationshipResponse struct {
	ID        int64     `json:"id"`
	ENSName1  string    `json:"ens_name_1"`
	ENSName2  string    `json:"ens_name_2"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateRelationshipRequest struct {
	ENSName1 string `json:"ens_name_1"`
	ENSName2 string `json:"ens_name_2"`
}

type CreateRelationshipResponse struct {
	ID        int64     `json:"id"`
	ENSName1  string    `json:"ens_name_1"`
	ENSName2  string    `json:"ens_name_2"`
	CreatedAt time.Time `json:"created_at"`
	Message   string    `json:"message"`
}

type DeleteByNamesRequest struct {
	ENSName1 string `json:"ens_name_1"`
	ENSName2 string `json:"ens_name_2"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

func relationshipResponse(rel store.Relationship) RelationshipResponse {
	return RelationshipResponse{
		ID:        rel.ID,
		ENSName1:  rel.NameA,
		ENSName2:  rel.NameB,
		CreatedAt: rel.CreatedAt,
	}
}

func (h *handler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	database := "connected"
	if err := h.store.Ping(ctx); err != nil {
		database = "disconnected"
	}

	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Database:  database,
		Timestamp: time.Now().UTC(),
	})
}

func (h *handler) List(c echo.Context) error {
	limit, err := queryInt(c, "limit", store.DefaultListLimit)
	if err != nil {
		return err
	}
	offset, err := queryInt(c, "offset", 0)
	if err != nil {
		return err
	}

	rels, err := h.store.ListRelationships(c.Request().Context(), limit, offset)
	if err != nil {
		return err
	}

	out := make([]RelationshipResponse, 0, len(rels))
	for _, rel := range rels {
		out = append(out, relationshipResponse(rel))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *handler) GetByName(c echo.Context) error {
	name := c.Param("ens_name")

	rels, err := h.store.GetRelationshipsByName(c.Request().Context(), name)
	if err != nil {
		return err
	}

	out := make([]RelationshipResponse, 0, len(rels))
	for _, rel := range rels {
		out = append(out, relationshipResponse(rel))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *handler) Create(c echo.Context) error {
	var req CreateRelationshipRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	canonA, canonB, err := ens.ValidateAndCanonicalize(req.ENSName1, req.ENSName2)
	if err != nil {
		return err
	}

	rel, err := h.store.CreateRelationship(c.Request().Context(), canonA, canonB)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, CreateRelationshipResponse{
		ID:        rel.ID,
		ENSName1:  rel.NameA,
		ENSName2:  rel.NameB,
		CreatedAt: rel.CreatedAt,
		Message:   "Relationship created successfully",
	})
}

func (h *handler) DeleteByID(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid relationship id %q", c.Param("id")))
	}

	if _, err := h.store.DeleteRelationshipByID(c.Request().Context(), id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message":    "Relationship deleted successfully",
		"deleted_id": id,
	})
}

func (h *handler) DeleteByNames(c echo.Context) error {
	var req DeleteByNamesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return h.deleteByNames(c, req.ENSName1, req.ENSName2)
}

func (h *handler) DeleteByNamesQuery(c echo.Context) error {
	return h.deleteByNames(c, c.QueryParam("ens_name_1"), c.QueryParam("ens_name_2"))
}

func (h *handler) deleteByNames(c echo.Context, nameA, nameB string) error {
	if nameA == "" || nameB == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "both ens_name_1 and ens_name_2 are required")
	}

	if _, err := h.store.DeleteRelationshipByNames(c.Request().Context(), nameA, nameB); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message":    "Relationship deleted successfully",
		"ens_name_1": nameA,
		"ens_name_2": nameB,
	})
}

func queryInt(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid %s %q", name, raw))
	}
	return value, nil
}
