// SPDX-License-Identifier: MIT

package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/tfidf/tokenize"
	"github.com/katalvlaran/tfidf/vectorize"
	"github.com/katalvlaran/tfidf/vocab"
)

var (
	// ErrTooManyDocuments indicates a corpus larger than Config.MaxDocuments.
	ErrTooManyDocuments = errors.New("server: too many documents")

	// ErrBodyTooLarge indicates a request body larger than Config.MaxBodyBytes.
	ErrBodyTooLarge = errors.New("server: request body too large")

	// ErrTooManyCells indicates a corpus whose matrices would exceed Config.MaxCells.
	ErrTooManyCells = errors.New("server: corpus matrix too large")
)

// CorpusRequest is the body of every POST endpoint.
type CorpusRequest struct {
	Documents []string `json:"documents" binding:"required"`
	// EmptyDocuments is "error" or "zero"; empty uses the server default.
	EmptyDocuments string `json:"empty_documents,omitempty"`
}

// MatrixResponse is a document-by-term matrix with its column labels.
type MatrixResponse struct {
	FeatureNames []string    `json:"feature_names"`
	Rows         [][]float64 `json:"rows"`
}

// FitResponse adds the idf weights to the TF-IDF matrix.
type FitResponse struct {
	FeatureNames []string    `json:"feature_names"`
	IDF          []float64   `json:"idf"`
	Rows         [][]float64 `json:"rows"`
}

// SimilarityResponse is the D×D cosine-similarity matrix.
type SimilarityResponse struct {
	Rows [][]float64 `json:"rows"`
}

func registerRoutes(router *gin.Engine, s *Server) {
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/v1")
	v1.POST("/counts", s.handleCounts)
	v1.POST("/tfidf", s.handleFit)
	v1.POST("/similarity", s.handleSimilarity)
	v1.POST("/model", s.handleModel)
}

// bindCorpus decodes the request, enforces the size limits and resolves the
// policy. square adds the documents² bound of the similarity matrix. On
// failure it has already written the error response.
func (s *Server) bindCorpus(c *gin.Context, square bool) (*CorpusRequest, vectorize.EmptyDocumentPolicy, bool) {
	if s.cfg.MaxBodyBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.MaxBodyBytes)
	}

	var req CorpusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(c, http.StatusRequestEntityTooLarge,
				fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, tooLarge.Limit))
			return nil, 0, false
		}
		respondError(c, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return nil, 0, false
	}
	if s.cfg.MaxDocuments > 0 && len(req.Documents) > s.cfg.MaxDocuments {
		respondError(c, http.StatusRequestEntityTooLarge,
			fmt.Errorf("%w: %d > %d", ErrTooManyDocuments, len(req.Documents), s.cfg.MaxDocuments))
		return nil, 0, false
	}

	policy := s.cfg.EmptyDocuments
	if req.EmptyDocuments != "" {
		p, err := vectorize.ParseEmptyDocumentPolicy(req.EmptyDocuments)
		if err != nil {
			respondError(c, http.StatusBadRequest, err)
			return nil, 0, false
		}
		policy = p
	}

	if cells := matrixCells(req.Documents, square); s.cfg.MaxCells > 0 && cells > s.cfg.MaxCells {
		respondError(c, http.StatusRequestEntityTooLarge,
			fmt.Errorf("%w: %d cells > %d", ErrTooManyCells, cells, s.cfg.MaxCells))
		return nil, 0, false
	}

	return &req, policy, true
}

// matrixCells returns the cell count of the largest dense matrix the corpus
// produces: documents × distinct tokens, or documents² when square is set and
// that is larger. It builds only the vocabulary, never a matrix.
func matrixCells(docs []string, square bool) int {
	v := vocab.New()
	for _, d := range docs {
		v.AddAll(tokenize.Fields(d))
	}
	cells := len(docs) * v.Len()
	if sq := len(docs) * len(docs); square && sq > cells {
		cells = sq
	}

	return cells
}

func (s *Server) handleCounts(c *gin.Context) {
	req, _, ok := s.bindCorpus(c, false)
	if !ok {
		return
	}
	cv := vectorize.NewCountVectorizer()
	counts, err := cv.FitTransform(req.Documents)
	if err != nil {
		respondVectorizeError(c, err)
		return
	}

	c.JSON(http.StatusOK, MatrixResponse{FeatureNames: cv.FeatureNames(), Rows: counts.ToRows()})
}

func (s *Server) handleFit(c *gin.Context) {
	req, policy, ok := s.bindCorpus(c, false)
	if !ok {
		return
	}
	v := vectorize.NewTfidfVectorizer(vectorize.WithEmptyDocumentPolicy(policy))
	m, err := v.FitTransform(req.Documents)
	if err != nil {
		respondVectorizeError(c, err)
		return
	}

	c.JSON(http.StatusOK, FitResponse{
		FeatureNames: v.FeatureNames(),
		IDF:          v.IDFWeights(),
		Rows:         m.ToRows(),
	})
}

func (s *Server) handleSimilarity(c *gin.Context) {
	req, policy, ok := s.bindCorpus(c, true)
	if !ok {
		return
	}
	v := vectorize.NewTfidfVectorizer(vectorize.WithEmptyDocumentPolicy(policy))
	m, err := v.FitTransform(req.Documents)
	if err != nil {
		respondVectorizeError(c, err)
		return
	}
	sim, err := vectorize.Similarity(m)
	if err != nil {
		respondVectorizeError(c, err)
		return
	}

	c.JSON(http.StatusOK, SimilarityResponse{Rows: sim.ToRows()})
}

func (s *Server) handleModel(c *gin.Context) {
	req, policy, ok := s.bindCorpus(c, false)
	if !ok {
		return
	}
	v := vectorize.NewTfidfVectorizer(vectorize.WithEmptyDocumentPolicy(policy))
	if _, err := v.FitTransform(req.Documents); err != nil {
		respondVectorizeError(c, err)
		return
	}
	model, err := v.Snapshot()
	if err != nil {
		respondVectorizeError(c, err)
		return
	}

	c.JSON(http.StatusOK, model)
}

// respondVectorizeError maps pipeline failures onto status codes.
func respondVectorizeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, vectorize.ErrEmptyDocument):
		respondError(c, http.StatusUnprocessableEntity, err)
	case errors.Is(err, vectorize.ErrUnknownPolicy):
		respondError(c, http.StatusBadRequest, err)
	default:
		respondError(c, http.StatusInternalServerError, err)
	}
}

func respondError(c *gin.Context, status int, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}
