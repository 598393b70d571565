package model

// All lists every table mapping in migration order.
func All() []any {
	return []any{
		&StudentModel{},
		&VendorModel{},
		&SubscriptionModel{},
		&SubscriptionRequestModel{},
		&HolidayModel{},
		&VendorHolidayModel{},
		&CustomerModel{},
		&OrderModel{},
		&PaymentModel{},
		&AnnouncementModel{},
		&NotificationModel{},
		&MessageModel{},
		&UserDeviceModel{},
	}
}
