package seed

import (
	blogDto "autocare/internal/domains/blog/model/dto"
	serviceModel "autocare/internal/domains/carservice/model"
	serviceDto "autocare/internal/domains/carservice/model/dto"
)

func ptr[T any](v T) *T {
	return &v
}

func services() []serviceDto.CreateServiceRequest {
	return []serviceDto.CreateServiceRequest{
		{
			Name:          "Oil Change",
			NameAr:        ptr("تغيير الزيت"),
			Description:   "Engine oil and filter replacement with a multi-point check.",
			DescriptionAr: ptr("استبدال زيت المحرك والفلتر مع فحص شامل."),
			Category:      serviceModel.CategoryMaintenance,
			Price:         ptr(149.0),
			Duration:      45,
			Featured:      ptr(true),
		},
		{
			Name:          "Brake Service",
			NameAr:        ptr("صيانة الفرامل"),
			Description:   "Pad and disc inspection, replacement and brake fluid top-up.",
			DescriptionAr: ptr("فحص واستبدال الأقراص والتيل وتعبئة سائل الفرامل."),
			Category:      serviceModel.CategoryRepair,
			Price:         ptr(399.0),
			Duration:      120,
			Featured:      ptr(true),
		},
		{
			Name:          "Pre-Purchase Inspection",
			NameAr:        ptr("فحص ما قبل الشراء"),
			Description:   "Full mechanical and body inspection before you buy a used car.",
			DescriptionAr: ptr("فحص ميكانيكي وهيكلي كامل قبل شراء سيارة مستعملة."),
			Category:      serviceModel.CategoryInspection,
			Price:         ptr(299.0),
			Duration:      90,
		},
		{
			Name:          "Full Detailing",
			NameAr:        ptr("تلميع كامل"),
			Description:   "Interior deep clean, exterior polish and ceramic wax.",
			DescriptionAr: ptr("تنظيف داخلي عميق وتلميع خارجي وشمع سيراميك."),
			Category:      serviceModel.CategoryDetailing,
			Price:         ptr(549.0),
			Duration:      240,
		},
		{
			Name:          "Tyre Rotation & Balancing",
			NameAr:        ptr("تدوير وترصيص الإطارات"),
			Description:   "Rotate and balance all four tyres with pressure check.",
			DescriptionAr: ptr("تدوير وترصيص الإطارات الأربعة مع فحص الضغط."),
			Category:      serviceModel.CategoryTyres,
			Price:         ptr(119.0),
			Duration:      40,
		},
		{
			Name:          "Battery & Electrical Check",
			NameAr:        ptr("فحص البطارية والكهرباء"),
			Description:   "Battery load test, alternator and starter diagnostics.",
			DescriptionAr: ptr("اختبار البطارية وتشخيص الدينامو والمارش."),
			Category:      serviceModel.CategoryElectrical,
			Price:         ptr(99.0),
			Duration:      30,
		},
	}
}

func posts() []blogDto.CreateBlogRequest {
	return []blogDto.CreateBlogRequest{
		{
			Title:     "How Often Should You Change Your Oil?",
			TitleAr:   ptr("كم مرة يجب تغيير زيت سيارتك؟"),
			Excerpt:   "Intervals depend on the oil type and how you drive.",
			ExcerptAr: ptr("تعتمد الفترات على نوع الزيت وطريقة القيادة."),
			Content:   "Modern synthetic oils last between 7,500 and 10,000 km. Short trips and desert heat shorten that interval.",
			ContentAr: ptr("تدوم الزيوت الصناعية الحديثة بين 7,500 و10,000 كم. الرحلات القصيرة وحرارة الصحراء تقصر هذه الفترة."),
			Tags:      []string{"maintenance", "oil"},
			Published: true,
		},
		{
			Title:     "Preparing Your Car for Summer",
			TitleAr:   ptr("تجهيز سيارتك لفصل الصيف"),
			Excerpt:   "Coolant, tyres and AC are the first things to check.",
			ExcerptAr: ptr("سائل التبريد والإطارات والمكيف أول ما يجب فحصه."),
			Content:   "High temperatures stress the cooling system and tyres. Check coolant level, tyre pressure and AC performance before the heat arrives.",
			ContentAr: ptr("الحرارة المرتفعة تجهد نظام التبريد والإطارات. افحص مستوى سائل التبريد وضغط الإطارات وأداء المكيف قبل وصول الحر."),
			Tags:      []string{"seasonal", "tyres"},
			Published: true,
		},
	}
}
