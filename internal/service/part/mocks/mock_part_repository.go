package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vhsenna/parts-unlimited/internal/model"
)

type MockPartRepository struct {
	mock.Mock
}

func NewMockPartRepository(t interface {
	mock.TestingT
	Cleanup(func())
},
) *MockPartRepository {
	m := &MockPartRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPartRepository) Create(ctx context.Context, p *model.Part) (*model.Part, error) {
	ret := m.Called(ctx, p)

	var out *model.Part
	switch v := ret.Get(0).(type) {
	case func(context.Context, *model.Part) *model.Part:
		out = v(ctx, p)
	case *model.Part:
		out = v
	}
	return out, ret.Error(1)
}

func (m *MockPartRepository) PartByID(ctx context.Context, id int64) (*model.Part, error) {
	ret := m.Called(ctx, id)

	var out *model.Part
	if v := ret.Get(0); v != nil {
		out = v.(*model.Part)
	}
	return out, ret.Error(1)
}

func (m *MockPartRepository) List(ctx context.Context) ([]*model.Part, error) {
	ret := m.Called(ctx)

	var out []*model.Part
	if v := ret.Get(0); v != nil {
		out = v.([]*model.Part)
	}
	return out, ret.Error(1)
}

func (m *MockPartRepository) Update(ctx context.Context, p *model.Part) (*model.Part, error) {
	ret := m.Called(ctx, p)

	var out *model.Part
	switch v := ret.Get(0).(type) {
	case func(context.Context, *model.Part) *model.Part:
		out = v(ctx, p)
	case *model.Part:
		out = v
	}
	return out, ret.Error(1)
}

func (m *MockPartRepository) Delete(ctx context.Context, id int64) error {
	ret := m.Called(ctx, id)
	return ret.Error(0)
}
