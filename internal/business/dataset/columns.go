package dataset

import "github.com/tcphan/Medicare-Utilization-Dashboard/pkg/model"

// Dataset names used in errors, logs and load statistics.
const (
	HomeHealthDataset = "home_health"
	HospiceDataset    = "hospice"
	HospitalDataset   = "hospital"
)

// Shared column names.
const (
	ColCCN          = "CMS Certification Number (CCN)"
	ColState        = "State"
	ColCity         = "City"
	ColCounty       = "County Name"
	ColStartDate    = "Start Date"
	ColEndDate      = "End Date"
	ColFacilityName = "Facility Name"
)

// Home health columns.
const (
	ColProviderName = "Provider Name"
	ColOwnership    = "Type of Ownership"
	ColPPR          = "PPR Performance Categorization"

	MeasureQualityStar = "Quality of patient care star rating"
	MeasureSpending    = "How much Medicare spends on an episode of care at this agency, compared to Medicare spending across all agencies nationally"
)

// OfferColumns maps each service flag to its yes/no column.
var OfferColumns = map[model.Service]string{
	model.ServiceNursing:         "Offers Nursing Care Services",
	model.ServicePhysicalTherapy: "Offers Physical Therapy Services",
	model.ServiceOccupational:    "Offers Occupational Therapy Services",
	model.ServiceSpeechPathology: "Offers Speech Pathology Services",
	model.ServiceMedicalSocial:   "Offers Medical Social Services",
	model.ServiceHomeHealthAide:  "Offers Home Health Aide Services",
}

// HomeHealthMeasures are the numeric quality and cost columns offered by the
// histogram comparison. The first two are required.
var HomeHealthMeasures = []string{
	MeasureQualityStar,
	MeasureSpending,
	"How often the home health team began their patients' care in a timely manner",
	"How often the home health team checked patients' risk of falling",
	"How often the home health team checked patients for depression",
	"How often the home health team determined whether patients received a flu shot for the current flu season",
	"How often the home health team made sure that their patients received a pneumococcal vaccine (pneumonia shot)",
	"With diabetes, how often the home health team got doctor's orders, gave foot care, and taught patients about foot care",
	"How often patients got better at walking or moving around",
	"How often patients got better at getting in and out of bed",
	"How often patients got better at bathing",
	"How often patients' breathing improved",
	"How often patients' wounds improved or healed after an operation",
	"How often patients got better at taking their drugs correctly by mouth",
	"How often home health patients had to be admitted to the hospital",
	"How often patients receiving home health care needed urgent, unplanned care in the ER without being admitted",
	"Changes in skin integrity post-acute care: pressure ulcer/injury",
	"How often physician-recommended actions to address medication issues were completely timely",
}

// Hospice columns.
const (
	ColMeasureCode = "Measure Code"
	ColMeasureName = "Measure Name"
	ColScore       = "Score"
)

// Hospital columns.
const (
	ColFacilityID         = "Facility ID"
	ColPaymentMeasureName = "Payment Measure Name"
	ColPaymentCategory    = "Payment Category"
	ColPayment            = "Payment"
	ColValueCategory      = "Value of Care Category"
)

func homeHealthRequired() []string {
	cols := []string{ColState, ColCCN, ColProviderName, ColOwnership, MeasureQualityStar, MeasureSpending}
	for _, svc := range model.Services {
		cols = append(cols, OfferColumns[svc])
	}
	return cols
}

var hospiceRequired = []string{ColCCN, ColFacilityName, ColState, ColCounty, ColMeasureName, ColScore, ColStartDate, ColEndDate}

var hospitalRequired = []string{ColFacilityID, ColFacilityName, ColCity, ColState, ColPaymentMeasureName, ColPaymentCategory, ColPayment, ColValueCategory}
