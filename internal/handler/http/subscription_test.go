package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/lacnutry/internal/service"
	"github.com/MKhiriev/lacnutry/models"
)

func TestHandler_GetSubscriptionAndPlans(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newHandlerFixture(t, ctrl, true)
	f.subscription.EXPECT().Status().Return(models.SubscriptionStatus{LastError: "Cartão recusado"})
	f.subscription.EXPECT().Plans().Return(models.DefaultPlans())

	rec := f.do(http.MethodGet, "/api/subscription", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"hasSubscription":false,"pending":false,"lastError":"Cartão recusado"}`, rec.Body.String())

	rec = f.do(http.MethodGet, "/api/subscription/plans", "")
	require.Equal(t, http.StatusOK, rec.Code)
	plans := decodeResponse[[]models.Plan](t, rec.Body.Bytes())
	require.Len(t, plans, 2)
	assert.Equal(t, "com.lactosefree.monthly", plans[0].ProductID)
}

func TestHandler_Purchase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newHandlerFixture(t, ctrl, true)
	gomock.InOrder(
		f.subscription.EXPECT().Purchase(gomock.Any(), "annual").Return(nil),
		f.subscription.EXPECT().Status().Return(models.SubscriptionStatus{Pending: true}),
	)

	rec := f.do(http.MethodPost, "/api/subscription/purchase", `{"planId":" annual "}`)

	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.True(t, decodeResponse[models.SubscriptionStatus](t, rec.Body.Bytes()).Pending)
}

func TestHandler_PurchaseErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newHandlerFixture(t, ctrl, true)

	tests := []struct {
		name       string
		planID     string
		err        error
		wantStatus int
	}{
		{"unknown plan", "weekly", fmt.Errorf("%w: weekly", service.ErrPlanNotFound), http.StatusNotFound},
		{"product missing in store", "monthly", service.ErrProductUnavailable, http.StatusUnprocessableEntity},
		{"billing disabled", "monthly", service.ErrBillingUnavailable, http.StatusServiceUnavailable},
		{"store down", "annual", fmt.Errorf("%w: timeout", service.ErrUpstreamFailure), http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f.subscription.EXPECT().Purchase(gomock.Any(), tt.planID).Return(tt.err)

			rec := f.do(http.MethodPost, "/api/subscription/purchase", fmt.Sprintf(`{"planId":%q}`, tt.planID))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}

	rec := f.do(http.MethodPost, "/api/subscription/purchase", `{"planId":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMissingPlanID.Error())
}

func TestHandler_Restore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newHandlerFixture(t, ctrl, true)

	f.subscription.EXPECT().Restore(gomock.Any()).Return(service.ErrNoPurchasesToRestore)
	rec := f.do(http.MethodPost, "/api/subscription/restore", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	gomock.InOrder(
		f.subscription.EXPECT().Restore(gomock.Any()).Return(nil),
		f.subscription.EXPECT().Status().Return(models.SubscriptionStatus{HasSubscription: true}),
	)
	rec = f.do(http.MethodPost, "/api/subscription/restore", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeResponse[models.SubscriptionStatus](t, rec.Body.Bytes()).HasSubscription)
}
