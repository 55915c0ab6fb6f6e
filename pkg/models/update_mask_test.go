package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type patchShape struct {
	Name     *string  `json:"name,omitempty"`
	Room     *string  `json:"room,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Ignored  *string  `json:"-"`
	internal *string
}

func TestUpdateMaskListsSetFields(t *testing.T) {
	p := patchShape{Room: Ptr("301"), Tags: []string{}, Ignored: Ptr("x"), internal: Ptr("y")}
	assert.Equal(t, []string{"room", "tags"}, UpdateMask(p))
	assert.Equal(t, []string{"room", "tags"}, UpdateMask(&p))
}

func TestUpdateMaskEmpty(t *testing.T) {
	assert.Empty(t, UpdateMask(patchShape{}))
	assert.Nil(t, UpdateMask((*patchShape)(nil)))
	assert.Nil(t, UpdateMask("not a struct"))
}
