package plan

import (
	"context"
	"fmt"
	"strings"

	"procplan/models"
)

// HeaderGroup - заголовок и его закупаемые позиции.
type HeaderGroup struct {
	Header   models.Component   `json:"header"`
	Children []models.Component `json:"children"`
}

// GroupByHeaders раскладывает плоский список по заголовкам. Порядок заголовков
// и позиций сохраняется; позиции без наименования закупки отбрасываются.
func GroupByHeaders(components []models.Component) []HeaderGroup {
	groups := []HeaderGroup{}
	index := make(map[int]int)
	for _, c := range components {
		if !c.IsHeader {
			continue
		}
		index[c.ID] = len(groups)
		groups = append(groups, HeaderGroup{Header: c, Children: []models.Component{}})
	}
	if len(groups) == 0 {
		return groups
	}

	for _, c := range components {
		if c.IsHeader || c.ParentID == nil || !hasPurchaseName(c) {
			continue
		}
		i, ok := index[*c.ParentID]
		if !ok {
			continue
		}
		groups[i].Children = append(groups[i].Children, c)
	}
	return groups
}

func hasPurchaseName(c models.Component) bool {
	return c.PurchaseName != nil && strings.TrimSpace(*c.PurchaseName) != ""
}

// Hierarchy возвращает комплектующие тендера, сгруппированные по заголовкам.
func (e *Engine) Hierarchy(ctx context.Context, tenderID int) ([]HeaderGroup, error) {
	components, err := e.gw.ComponentsByTender(ctx, tenderID)
	if err != nil {
		return nil, fmt.Errorf("components of tender %d: %w", tenderID, err)
	}
	return GroupByHeaders(components), nil
}

// TechnicalComments возвращает технические комментарии тендера.
func (e *Engine) TechnicalComments(ctx context.Context, tenderID int) ([]models.Comment, error) {
	comments, err := e.gw.CommentsByTender(ctx, tenderID, true)
	if err != nil {
		return nil, fmt.Errorf("comments of tender %d: %w", tenderID, err)
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	return comments, nil
}
