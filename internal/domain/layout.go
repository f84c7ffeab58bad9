package domain

type UploadedFile struct {
	URL        string `json:"url"`
	UploadTime string `json:"uploadTime"`
	UploadedBy string `json:"uploadedBy"`
}

// Layout holds the design files of one lead. Final files are stored as
// index-aligned parallel arrays where any entry may be null.
type Layout struct {
	LogoLeftImages   []UploadedFile `json:"logoLeftImages"`
	LogoRightImages  []UploadedFile `json:"logoRightImages"`
	BackLogoImages   []UploadedFile `json:"backLogoImages"`
	BackDesignImages []UploadedFile `json:"backDesignImages"`

	FinalLogoDst            []*string `json:"finalLogoDst"`
	FinalLogoDstUploadTimes []*string `json:"finalLogoDstUploadTimes"`
	FinalLogoDstUploadedBy  []*string `json:"finalLogoDstUploadedBy"`

	FinalBackDesignDst            []*string `json:"finalBackDesignDst"`
	FinalBackDesignDstUploadTimes []*string `json:"finalBackDesignDstUploadTimes"`
	FinalBackDesignDstUploadedBy  []*string `json:"finalBackDesignDstUploadedBy"`

	FinalNamesDst            []*string `json:"finalNamesDst"`
	FinalNamesDstUploadTimes []*string `json:"finalNamesDstUploadTimes"`
	FinalNamesDstUploadedBy  []*string `json:"finalNamesDstUploadedBy"`
}

type UploadKind string

const (
	UploadLogoLeft        UploadKind = "logoLeft"
	UploadLogoRight       UploadKind = "logoRight"
	UploadBackLogo        UploadKind = "backLogo"
	UploadBackDesign      UploadKind = "backDesign"
	UploadFinalLogoDst    UploadKind = "finalLogoDst"
	UploadFinalBackDesign UploadKind = "finalBackDesignDst"
	UploadFinalNamesDst   UploadKind = "finalNamesDst"
)

// Upload is one upload event regardless of where the layout stores it.
type Upload struct {
	Kind       UploadKind
	URL        string
	UploadTime string
	UploadedBy string
}

// Uploads flattens every image and final-file slot with a known uploader.
func (l Layout) Uploads() []Upload {
	var out []Upload

	images := []struct {
		kind  UploadKind
		files []UploadedFile
	}{
		{UploadLogoLeft, l.LogoLeftImages},
		{UploadLogoRight, l.LogoRightImages},
		{UploadBackLogo, l.BackLogoImages},
		{UploadBackDesign, l.BackDesignImages},
	}
	for _, group := range images {
		for _, f := range group.files {
			if f.UploadedBy == "" {
				continue
			}
			out = append(out, Upload{
				Kind:       group.kind,
				URL:        f.URL,
				UploadTime: f.UploadTime,
				UploadedBy: f.UploadedBy,
			})
		}
	}

	finals := []struct {
		kind       UploadKind
		files      []*string
		times      []*string
		uploadedBy []*string
	}{
		{UploadFinalLogoDst, l.FinalLogoDst, l.FinalLogoDstUploadTimes, l.FinalLogoDstUploadedBy},
		{UploadFinalBackDesign, l.FinalBackDesignDst, l.FinalBackDesignDstUploadTimes, l.FinalBackDesignDstUploadedBy},
		{UploadFinalNamesDst, l.FinalNamesDst, l.FinalNamesDstUploadTimes, l.FinalNamesDstUploadedBy},
	}
	for _, slot := range finals {
		for i, by := range slot.uploadedBy {
			if by == nil || *by == "" {
				continue
			}
			out = append(out, Upload{
				Kind:       slot.kind,
				URL:        valueAt(slot.files, i),
				UploadTime: valueAt(slot.times, i),
				UploadedBy: *by,
			})
		}
	}

	return out
}

func valueAt(values []*string, i int) string {
	if i >= len(values) || values[i] == nil {
		return ""
	}
	return *values[i]
}
