// internal/service/auth/route.go
package auth

import (
	"sort"

	authdto "coreadmin-service/internal/domain/auth"
	"coreadmin-service/internal/domain/rbac"
)

// buildRouteTree turns a flat menu list into the nested route tree the
// front-end router consumes. Button entries are dropped; a node whose
// parent is absent from the list is promoted to a root.
func buildRouteTree(menus []rbac.Menu) []*authdto.RouteItem {
	nodes := make(map[int64]*authdto.RouteItem, len(menus))
	for _, m := range menus {
		if m.Type == rbac.MenuTypeButton {
			continue
		}
		nodes[m.ID] = toRouteItem(m)
	}

	var roots []*authdto.RouteItem
	for _, n := range nodes {
		parent, ok := nodes[n.ParentID]
		if !ok || n.ParentID == n.ID {
			roots = append(roots, n)
			continue
		}
		parent.Children = append(parent.Children, n)
	}

	if roots == nil {
		roots = []*authdto.RouteItem{}
	}
	sortRoutes(roots)
	return roots
}

func sortRoutes(items []*authdto.RouteItem) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Sort != items[j].Sort {
			return items[i].Sort < items[j].Sort
		}
		return items[i].ID < items[j].ID
	})
	for _, it := range items {
		sortRoutes(it.Children)
	}
}

func toRouteItem(m rbac.Menu) *authdto.RouteItem {
	return &authdto.RouteItem{
		ID:         m.ID,
		Title:      m.Title,
		ParentID:   m.ParentID,
		Type:       m.Type,
		Path:       deref(m.Path),
		Name:       deref(m.Name),
		Component:  deref(m.Component),
		Redirect:   deref(m.Redirect),
		Icon:       deref(m.Icon),
		IsExternal: m.IsExternal,
		IsHidden:   m.IsHidden,
		IsCache:    m.IsCache,
		Permission: deref(m.Permission),
		Sort:       m.Sort,
		Status:     m.Status,
		Children:   []*authdto.RouteItem{},
	}
}
