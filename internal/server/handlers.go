package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/fyerfyer/cardswap/checklist"
	"github.com/gin-gonic/gin"
)

// itemsRequest 批量操作的请求体，编号可以直接给出，也可以是任意分隔的文本
type itemsRequest struct {
	Items []checklist.Item `json:"items" binding:"omitempty,dive,gt=0"`
	Text  string           `json:"text"`
}

func (r itemsRequest) all() []checklist.Item {
	items := make([]checklist.Item, 0, len(r.Items))
	items = append(items, r.Items...)
	return append(items, checklist.ParseItems(r.Text)...)
}

type generateRequest struct {
	Count int `json:"count" binding:"required"`
}

type createRequest struct {
	Text  string `json:"text"`
	Count int    `json:"count" binding:"gte=0"`
}

type textRequest struct {
	Text string `json:"text"`
}

type compareRequest struct {
	A string `json:"a"`
	B string `json:"b"`
}

type generateResponse struct {
	Lists checklist.Lists `json:"lists"`
	Text  string          `json:"text"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"sessions": s.svc.Len(),
	})
}

// checkCount 限制一次生成的数量
func (s *Server) checkCount(count int) error {
	if count < 1 || count > s.cfg.Server.MaxGenerate {
		return fmt.Errorf("%w: %d (allowed 1-%d)", checklist.ErrInvalidCount, count, s.cfg.Server.MaxGenerate)
	}
	return nil
}

func (s *Server) handleGenerate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	if err := s.checkCount(req.Count); err != nil {
		abortWithError(c, err)
		return
	}

	lists, err := checklist.Generate(req.Count)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, generateResponse{
		Lists: lists,
		Text:  checklist.Serialize(lists, checklist.FormatTimestamp(s.now())),
	})
}

func (s *Server) handleCompare(c *gin.Context) {
	var req compareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	result, err := checklist.CompareText(req.A, req.B)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleCreate(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	if req.Count > 0 {
		if err := s.checkCount(req.Count); err != nil {
			abortWithError(c, err)
			return
		}
		view, err := s.svc.Generate(req.Count)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusCreated, view)
		return
	}

	view, err := s.svc.Create(req.Text)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (s *Server) handleList(c *gin.Context) {
	c.JSON(http.StatusOK, s.svc.List())
}

func (s *Server) handleGet(c *gin.Context) {
	view, err := s.svc.Get(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (s *Server) handleDelete(c *gin.Context) {
	if err := s.svc.Delete(c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// apply 在会话上执行操作并返回新的视图
func (s *Server) apply(c *gin.Context, fn func(*checklist.Store) error) {
	view, err := s.svc.Apply(c.Param("id"), fn)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// applyItems 解析批量请求体并对会话执行批量操作
func (s *Server) applyItems(c *gin.Context, op func(*checklist.Store, []checklist.Item) error) {
	var req itemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	items := req.all()
	s.apply(c, func(store *checklist.Store) error {
		return op(store, items)
	})
}

func (s *Server) handleFound(c *gin.Context) {
	s.applyItems(c, (*checklist.Store).ApplyFoundBatch)
}

func (s *Server) handleAddDoubles(c *gin.Context) {
	s.applyItems(c, (*checklist.Store).AddDoubles)
}

func (s *Server) handleRemoveDoubles(c *gin.Context) {
	s.applyItems(c, (*checklist.Store).RemoveDoubles)
}

func (s *Server) handleRemoveMissing(c *gin.Context) {
	n, err := strconv.Atoi(c.Param("item"))
	if err != nil || n <= 0 {
		abortBadRequest(c, fmt.Errorf("invalid item %q", c.Param("item")))
		return
	}

	s.apply(c, func(store *checklist.Store) error {
		store.RemoveMissing(checklist.Item(n))
		return nil
	})
}

func (s *Server) handleReconcile(c *gin.Context) {
	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	s.apply(c, func(store *checklist.Store) error {
		store.ReconcileText(req.Text)
		return nil
	})
}

func (s *Server) handleDismiss(c *gin.Context) {
	s.apply(c, func(store *checklist.Store) error {
		store.DismissConflicts()
		return nil
	})
}
