package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrobakowski/humanoid/internal/generator"
	"github.com/mrobakowski/humanoid/internal/log"
	"github.com/mrobakowski/humanoid/internal/response"
)

const maxBatchSize = 1000

// Handler serves the prefixed identifier HTTP API.
type Handler struct {
	registry map[string]generator.Generator
}

// New creates a Handler over the entity registry.
func New(registry map[string]generator.Generator) *Handler {
	return &Handler{registry: registry}
}

// Register mounts the routes on r.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/healthz", h.health)

	ids := r.Group("/v1/ids")
	ids.POST("/:entity", h.mint)
	ids.GET("/:entity/validate", h.validate)
	ids.GET("/:entity/parse", h.parse)
}

func (h *Handler) health(c *gin.Context) {
	response.Success(c, gin.H{"status": "ok"})
}

func (h *Handler) lookup(c *gin.Context) (generator.Generator, bool) {
	entity := c.Param("entity")
	gen, ok := h.registry[entity]
	if !ok {
		response.NotFound(c, "unknown entity "+strconv.Quote(entity))
		return nil, false
	}
	return gen, true
}

type parseBody struct {
	Prefix        string `json:"prefix"`
	Body          string `json:"body"`
	Canonical     string `json:"canonical"`
	DecimalValue  string `json:"decimal_value,omitempty"`
	TimestampMs   int64  `json:"timestamp_ms,omitempty"`
	RandomPayload string `json:"random_payload,omitempty"`
	BodyLength    int32  `json:"body_length"`
}

func (h *Handler) mint(c *gin.Context) {
	gen, ok := h.lookup(c)
	if !ok {
		return
	}

	count := 1
	if raw := c.Query("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(c, "count must be an integer")
			return
		}
		count = n
	}
	if count < 1 || count > maxBatchSize {
		response.BadRequest(c, "count must be between 1 and "+strconv.Itoa(maxBatchSize))
		return
	}

	logger := log.Ctx(c.Request.Context())

	if count == 1 {
		id, err := gen.Generate()
		if err != nil {
			logger.Error().Err(err).Str(log.FieldEntity, c.Param("entity")).Msg("mint failed")
			response.InternalError(c, "failed to generate id")
			return
		}
		response.Created(c, gin.H{"id": id})
		return
	}

	ids, err := gen.GenerateBatch(count)
	if err != nil {
		logger.Error().Err(err).Str(log.FieldEntity, c.Param("entity")).Int(log.FieldCount, count).Msg("batch mint failed")
		response.InternalError(c, "failed to generate ids")
		return
	}
	response.Created(c, gin.H{"ids": ids})
}

func (h *Handler) validate(c *gin.Context) {
	gen, ok := h.lookup(c)
	if !ok {
		return
	}

	id := c.Query("id")
	if id == "" {
		response.BadRequest(c, "id query parameter is required")
		return
	}

	valid, reason := gen.Validate(id)
	response.Success(c, gin.H{"valid": valid, "reason": reason})
}

func (h *Handler) parse(c *gin.Context) {
	gen, ok := h.lookup(c)
	if !ok {
		return
	}

	id := c.Query("id")
	if id == "" {
		response.BadRequest(c, "id query parameter is required")
		return
	}

	result, err := gen.Parse(id)
	if err != nil {
		response.UnprocessableEntity(c, err.Error())
		return
	}

	response.Success(c, parseBody{
		Prefix:        result.Prefix,
		Body:          result.Body,
		Canonical:     result.Canonical,
		DecimalValue:  result.DecimalValue,
		TimestampMs:   result.TimestampMs,
		RandomPayload: result.RandomPayload,
		BodyLength:    result.BodyLength,
	})
}
