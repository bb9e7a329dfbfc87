package converter

import (
	"github.com/samber/lo"

	"github.com/vhsenna/parts-unlimited/internal/model"
	apiv1 "github.com/vhsenna/parts-unlimited/pkg/api/v1"
)

func PartRequestToFields(req *apiv1.PartRequest) model.PartFields {
	if req == nil {
		return model.PartFields{}
	}

	return model.PartFields{
		Name:         req.Name,
		SKU:          req.SKU,
		Description:  req.Description,
		WeightOunces: req.WeightOunces,
		IsActive:     req.IsActive,
	}
}

func PartToAPI(p *model.Part) apiv1.Part {
	return apiv1.Part{
		ID:           p.ID,
		Name:         p.Name,
		SKU:          p.SKU,
		Description:  p.Description,
		WeightOunces: p.WeightOunces,
		IsActive:     p.IsActive,
	}
}

// PartsToAPI never returns nil so that an empty list encodes as [].
func PartsToAPI(parts []*model.Part) []apiv1.Part {
	if len(parts) == 0 {
		return []apiv1.Part{}
	}

	return lo.Map(parts, func(p *model.Part, _ int) apiv1.Part {
		return PartToAPI(p)
	})
}
