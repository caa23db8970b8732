package extractor

import "github.com/subha-ilamathy/kyc-document-extraction/internal/domain"

// BuildPrompt returns the extraction prompt for the given document-type
// hint. Unknown hints fall back to the auto-detect prompt.
func BuildPrompt(docType domain.DocumentType) string {
	switch docType {
	case domain.DocumentTypePassport:
		return passportPrompt
	case domain.DocumentTypeDriverLicense:
		return driverLicensePrompt
	default:
		return autoDetectPrompt
	}
}

const promptCommon = `IMPORTANT: Extract the COMPLETE, UNMASKED values exactly as they appear on the document. Do NOT mask, redact, or replace any characters with asterisks or stars.

For each extracted field, also provide:
- Bounding box coordinates [x1, y1, x2, y2] in pixels relative to the image dimensions, where (x1, y1) is the top-left corner and (x2, y2) is the bottom-right corner
- A confidence score between 0 and 1 (1 = highest confidence)

Be precise and extract dates in YYYY-MM-DD format. Include all visible text from the document. Return the actual values as they appear, not masked versions.`

const passportPrompt = `Extract all relevant information from this passport document for KYC identity verification.

` + promptCommon + `

Focus on extracting:
- Full name (as it appears on the passport)
- Date of birth
- Passport number
- Expiry date
- Issue date
- Nationality
- Any other identifying information`

const driverLicensePrompt = `Extract all relevant information from this driver's license document for KYC identity verification.

` + promptCommon + `

Focus on extracting:
- Full name (as it appears on the license)
- Date of birth
- License number
- Expiry date
- Issue date
- Address
- Any other identifying information`

const autoDetectPrompt = `Analyze this identity document and extract all relevant information for KYC identity verification.

` + promptCommon + `

First, identify the document type (passport, driver's license, national ID, etc.), then extract:
- Full name
- Date of birth
- Document number
- Expiry date
- Issue date
- Nationality (if applicable)
- Address (if applicable)
- Any other identifying information`
