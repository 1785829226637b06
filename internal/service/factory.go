package service

import (
	"fmt"

	"github.com/yogasw/portal-jualan/pkg/uow"
)

// PortalServices bundles everything the portal transport needs.
type PortalServices struct {
	UserService   *UserService
	ReportService *ReportService
}

func PortalFactory(unitOfWork uow.UOW, psswd PasswordHasher) (*PortalServices, error) {
	userService, userServiceErr := NewUserService(unitOfWork, psswd)
	if userServiceErr != nil {
		return nil, fmt.Errorf("portal service factory: %s", userServiceErr.Error())
	}

	reportService, reportServiceErr := NewReportService(unitOfWork)
	if reportServiceErr != nil {
		return nil, fmt.Errorf("portal service factory: %s", reportServiceErr.Error())
	}

	return &PortalServices{
		UserService:   userService,
		ReportService: reportService,
	}, nil
}

// SalesServices bundles everything the sales transport needs.
type SalesServices struct {
	SellerService    *SellerService
	BuyerService     *BuyerService
	OrderService     *OrderService
	DashboardService *DashboardService
}

func SalesFactory(unitOfWork uow.UOW, psswd PasswordHasher) (*SalesServices, error) {
	sellerService, sellerServiceErr := NewSellerService(unitOfWork, psswd)
	if sellerServiceErr != nil {
		return nil, fmt.Errorf("sales service factory: %s", sellerServiceErr.Error())
	}

	buyerService, buyerServiceErr := NewBuyerService(unitOfWork)
	if buyerServiceErr != nil {
		return nil, fmt.Errorf("sales service factory: %s", buyerServiceErr.Error())
	}

	orderService, orderServiceErr := NewOrderService(unitOfWork)
	if orderServiceErr != nil {
		return nil, fmt.Errorf("sales service factory: %s", orderServiceErr.Error())
	}

	dashboardService, dashboardServiceErr := NewDashboardService(unitOfWork)
	if dashboardServiceErr != nil {
		return nil, fmt.Errorf("sales service factory: %s", dashboardServiceErr.Error())
	}

	return &SalesServices{
		SellerService:    sellerService,
		BuyerService:     buyerService,
		OrderService:     orderService,
		DashboardService: dashboardService,
	}, nil
}
