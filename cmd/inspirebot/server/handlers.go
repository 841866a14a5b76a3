package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/CullinNaylor9/inspire-course-bot-sub000/cmd/inspirebot/blocks"
)

var (
	errUnknownBlock = errors.New("unknown block")
	errBadSlot      = errors.New("slot must be a non-negative integer")
	errBadList      = errors.New("list must be \"palette\" or \"workspace\"")
)

type placeRequest struct {
	TemplateID string `json:"templateId" binding:"required"`
	Index      *int   `json:"index"`
}

type listRefRequest struct {
	List  string `json:"list"`
	Index int    `json:"index"`
}

type reorderRequest struct {
	Source      listRefRequest  `json:"source"`
	Destination *listRefRequest `json:"destination"`
}

type valueRequest struct {
	Value string `json:"value"`
}

type chatRequest struct {
	Message string `json:"message"`
}

func (s *Server) healthcheck(c *gin.Context) {
	RespondOK(c, gin.H{"status": "ok"})
}

func (s *Server) getPalette(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	RespondOK(c, toPaletteView(s.eng.Palette()))
}

func (s *Server) getWorkspace(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	RespondOK(c, toWorkspaceView(s.eng))
}

func (s *Server) resetWorkspace(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.eng.Reset()
	s.scene.Reset()
	RespondOK(c, toWorkspaceView(s.eng))
}

func (s *Server) placeBlock(c *gin.Context) {
	var req placeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		b   *blocks.WorkspaceBlock
		err error
	)
	if req.Index != nil {
		b, err = s.eng.PlaceAt(req.TemplateID, *req.Index)
	} else {
		b, err = s.eng.Place(req.TemplateID)
	}
	if errors.Is(err, blocks.ErrUnknownTemplate) {
		RespondError(c, http.StatusNotFound, "unknown_template", err)
		return
	}
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "place_failed", err)
		return
	}
	c.JSON(http.StatusCreated, toBlockView(b, s.eng.Inputs()))
}

func (s *Server) reorder(c *gin.Context) {
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	ev, err := req.toEvent()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	changed := s.eng.Reorder(ev)
	RespondOK(c, gin.H{"changed": changed, "blocks": toWorkspaceView(s.eng).Blocks})
}

func (r reorderRequest) toEvent() (blocks.DragEvent, error) {
	src, err := parseList(r.Source.List)
	if err != nil {
		return blocks.DragEvent{}, fmt.Errorf("source: %w", err)
	}
	ev := blocks.DragEvent{Source: blocks.ListRef{List: src, Index: r.Source.Index}}
	if r.Destination != nil {
		dst, err := parseList(r.Destination.List)
		if err != nil {
			return blocks.DragEvent{}, fmt.Errorf("destination: %w", err)
		}
		ev.Destination = &blocks.ListRef{List: dst, Index: r.Destination.Index}
	}
	return ev, nil
}

func parseList(s string) (blocks.List, error) {
	switch s {
	case "palette":
		return blocks.ListPalette, nil
	case "workspace":
		return blocks.ListWorkspace, nil
	default:
		return 0, errBadList
	}
}

func (s *Server) removeBlock(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.eng.Workspace().IndexOf(c.Param("id"))
	if i < 0 {
		RespondError(c, http.StatusNotFound, "unknown_block", fmt.Errorf("%w: %s", errUnknownBlock, c.Param("id")))
		return
	}
	s.eng.Remove(i)
	c.Status(http.StatusNoContent)
}

func (s *Server) setPin(c *gin.Context) {
	s.setSlot(c, s.eng.SetPinValue)
}

func (s *Server) setGeneric(c *gin.Context) {
	s.setSlot(c, s.eng.SetGenericValue)
}

func (s *Server) setSlot(c *gin.Context, set func(id string, slot int, value string)) {
	slot, err := strconv.Atoi(c.Param("slot"))
	if err != nil || slot < 0 {
		RespondError(c, http.StatusBadRequest, "invalid_slot", errBadSlot)
		return
	}
	var req valueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.eng.Block(c.Param("id"))
	if !ok {
		RespondError(c, http.StatusNotFound, "unknown_block", fmt.Errorf("%w: %s", errUnknownBlock, c.Param("id")))
		return
	}
	set(b.InstanceID, slot, req.Value)
	RespondOK(c, toBlockView(b, s.eng.Inputs()))
}

func (s *Server) setWait(c *gin.Context) {
	var req valueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.eng.Block(c.Param("id"))
	if !ok {
		RespondError(c, http.StatusNotFound, "unknown_block", fmt.Errorf("%w: %s", errUnknownBlock, c.Param("id")))
		return
	}
	s.eng.SetWaitValue(b.InstanceID, req.Value)
	RespondOK(c, toBlockView(b, s.eng.Inputs()))
}

func (s *Server) run(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	code := s.eng.Generate()
	s.log.Info("run", "blocks", s.eng.Workspace().Len())
	s.scene.Reset()
	RespondOK(c, toRunView(code, s.scene.Run(code)))
}

// askChat does not hold mu: the model call is slow and never touches the workspace.
func (s *Server) askChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	RespondOK(c, s.chat.Ask(c.Request.Context(), req.Message))
}
