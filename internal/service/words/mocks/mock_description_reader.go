package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockDescriptionReader struct {
	mock.Mock
}

func NewMockDescriptionReader(t interface {
	mock.TestingT
	Cleanup(func())
},
) *MockDescriptionReader {
	m := &MockDescriptionReader{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockDescriptionReader) Descriptions(ctx context.Context) ([]string, error) {
	ret := m.Called(ctx)

	var out []string
	if v := ret.Get(0); v != nil {
		out = v.([]string)
	}
	return out, ret.Error(1)
}
