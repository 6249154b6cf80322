package domain

// Time buckets the dashboard can request.
const (
	BucketHour  = "hour"
	BucketDay   = "day"
	BucketWeek  = "week"
	BucketMonth = "month"
)

var TimeBuckets = []string{BucketHour, BucketDay, BucketWeek, BucketMonth}

// Dimension keys of a breakdown.
const (
	DimCountry  = "cc"
	DimPage     = "pg"
	DimLocale   = "lc"
	DimReferrer = "ref"
	DimDevice   = "dv"
	DimBrowser  = "br"
	DimOS       = "os"
	DimSource   = "so"
	DimMedium   = "me"
	DimCampaign = "ca"
	DimLoadTime = "lt"
	DimEvent    = "ev"
)

var Dimensions = []string{
	DimCountry, DimPage, DimLocale, DimReferrer, DimDevice, DimBrowser,
	DimOS, DimSource, DimMedium, DimCampaign, DimLoadTime, DimEvent,
}

func IsTimeBucket(s string) bool {
	for _, b := range TimeBuckets {
		if b == s {
			return true
		}
	}
	return false
}

func IsDimension(s string) bool {
	for _, d := range Dimensions {
		if d == s {
			return true
		}
	}
	return false
}
