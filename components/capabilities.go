package components

import "image/color"

// Entity is anything a scene can own.
type Entity interface {
	Base() *Sprite
}

// Updatable sprites run once per tick before physics.
type Updatable interface {
	Update(elapsed float64, input Input)
}

// Canvas is the drawing surface the render layer hands to sprites.
type Canvas interface {
	FillRect(r Rect, clr color.Color)
}

// Renderable sprites draw themselves instead of the default decal.
type Renderable interface {
	Render(c Canvas, view Rect)
}

// PostRenderable sprites draw after every sprite has rendered.
type PostRenderable interface {
	PostRender(c Canvas, view Rect)
}

// CannonballReactive sprites respond to the hero landing a cannonball on them.
type CannonballReactive interface {
	OnCannonball(fallen float64)
}

// StateObserver sprites receive every shared state change.
type StateObserver interface {
	OnTransientState(key string, value int)
	OnPermanentState(key string, value int)
}
