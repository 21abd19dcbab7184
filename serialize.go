package multisplit

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Serialization is a structural snapshot: geometry, visibility, orientation
// and child order survive a round trip byte for byte. Guests are correlated
// by id against an externally supplied map on the way back; separators and
// percentages are derived state and are rebuilt, never stored.

type rectDTO struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type sizeDTO struct {
	W int `json:"w"`
	H int `json:"h"`
}

type sizingDTO struct {
	Geometry rectDTO `json:"geometry"`
	MinSize  sizeDTO `json:"minSize"`
	MaxSize  sizeDTO `json:"maxSize"`
}

type itemDTO struct {
	SizingInfo  sizingDTO `json:"sizingInfo"`
	IsVisible   bool      `json:"isVisible"`
	IsContainer bool      `json:"isContainer"`
	ObjectName  string    `json:"objectName"`
	GuestID     string    `json:"guestId,omitempty"`

	// Container fields.
	Children    []itemDTO `json:"children,omitempty"`
	Orientation int       `json:"orientation,omitempty"`
}

// Serialize renders the subtree rooted at this item as JSON.
func (m *Item) Serialize() ([]byte, error) {
	return json.MarshalIndent(m.toDTO(), "", "  ")
}

// Deserialize rebuilds a layout tree from Serialize output. Guests are
// re-attached by looking up their id in guests; ids with no entry leave
// the leaf as a guest-less placeholder.
func Deserialize(data []byte, guests map[string]Guest, opts ...RootOption) (*Item, error) {
	var dto itemDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("decoding layout: %w", err)
	}
	if !dto.IsContainer {
		return nil, errors.New("layout root must be a container")
	}

	root := newContainer(newHost(opts...), nil)
	root.fillFromDTO(&dto, guests)
	return root, nil
}

func (m *Item) toDTO() *itemDTO {
	dto := &itemDTO{
		SizingInfo: sizingDTO{
			Geometry: rectDTO{
				X: m.sizing.Geometry.X, Y: m.sizing.Geometry.Y,
				W: m.sizing.Geometry.Width, H: m.sizing.Geometry.Height,
			},
			MinSize: sizeDTO{W: m.sizing.MinSize.Width, H: m.sizing.MinSize.Height},
			MaxSize: sizeDTO{W: m.sizing.MaxSize.Width, H: m.sizing.MaxSize.Height},
		},
		IsVisible:   m.visible,
		IsContainer: m.isContainer,
		ObjectName:  m.name,
	}

	if m.guest != nil {
		dto.GuestID = m.guest.ID()
	}

	if m.isContainer {
		dto.Orientation = int(m.orientation)
		dto.Children = make([]itemDTO, 0, len(m.children))
		for _, child := range m.children {
			dto.Children = append(dto.Children, *child.toDTO())
		}
	}

	return dto
}

func (m *Item) fillFromDTO(dto *itemDTO, guests map[string]Guest) {
	if m.isContainer {
		m.deserializing = true
		defer func() { m.deserializing = false }()
	}

	m.sizing = newSizingInfo()
	m.sizing.Geometry = NewRect(dto.SizingInfo.Geometry.X, dto.SizingInfo.Geometry.Y,
		dto.SizingInfo.Geometry.W, dto.SizingInfo.Geometry.H)
	m.sizing.MinSize = NewSize(dto.SizingInfo.MinSize.W, dto.SizingInfo.MinSize.H)
	m.sizing.MaxSize = NewSize(dto.SizingInfo.MaxSize.W, dto.SizingInfo.MaxSize.H)
	m.visible = dto.IsVisible
	m.name = dto.ObjectName

	if dto.GuestID != "" {
		if guest, ok := guests[dto.GuestID]; ok {
			m.SetGuest(guest)
		} else if !m.isDummy() {
			m.logger().Warn("no guest to restore", zap.String("guestId", dto.GuestID))
		}
	}

	if !m.isContainer {
		return
	}

	m.orientation = Orientation(dto.Orientation)
	for i := range dto.Children {
		childDTO := &dto.Children[i]
		var child *Item
		if childDTO.IsContainer {
			child = newContainer(m.host, m)
		} else {
			child = newLeaf(m.host, m)
		}
		child.fillFromDTO(childDTO, guests)
		m.children = append(m.children, child)
	}

	if m.IsRoot() {
		m.updateChildPercentagesRecursive()
		if !m.isDummy() {
			m.updateSeparatorsRecursive()
			m.updateGuestGeometryRecursive()
		}
		m.emit(MinSizeChanged{Item: m})
		if !m.isDummy() {
			if err := m.CheckSanity(); err != nil {
				m.logger().Warn("deserialized layout is invalid", zap.Error(err))
			}
		}
	}
}

// cloneDummy copies the subtree into a host-less tree: no separators, no
// events, no sanity checks. Drop-rect simulation inserts into such clones.
func (m *Item) cloneDummy() *Item {
	var clone *Item
	if m.isContainer {
		clone = newContainer(nil, nil)
	} else {
		clone = newLeaf(nil, nil)
	}
	clone.fillFromDTO(m.toDTO(), nil)
	return clone
}

// ItemFromPath resolves a path of child indexes, as produced by
// PathFromRoot, against this subtree.
func (m *Item) ItemFromPath(path []int) *Item {
	container := m
	for i, index := range path {
		if index < 0 || index >= len(container.children) {
			m.Root().dumpToLogger()
			m.logger().Warn("invalid path index", zap.Int("index", index), zap.Ints("path", path))
			return nil
		}

		if i == len(path)-1 {
			return container.children[index]
		}
		container = container.children[index]
		if !container.isContainer {
			m.logger().Warn("path descends into a leaf", zap.Ints("path", path))
			return nil
		}
	}
	return m
}
