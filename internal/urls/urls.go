package urls

// Documentation URLs for guides and troubleshooting
// All URLs point to the documentation site at https://muurk.github.io/formdlg/

// FormFileReference is the YAML form file format reference,
// covering every field kind, validator name, and layout key.
const FormFileReference = "https://muurk.github.io/formdlg/guides/form-files/"

// BuilderGuide is the fluent builder guide for constructing
// form specifications in code.
const BuilderGuide = "https://muurk.github.io/formdlg/guides/builder/"

// ValidatorReference documents the built-in validators and how
// to write custom ones, including warning-severity findings.
const ValidatorReference = "https://muurk.github.io/formdlg/guides/validators/"

// SavedAnswers explains the answers registry: where it lives,
// what gets remembered, and how to reset it.
const SavedAnswers = "https://muurk.github.io/formdlg/guides/saved-answers/"

// TroubleshootingGuide provides solutions to common issues
// encountered with terminals, rendering, and the prompt fallback.
const TroubleshootingGuide = "https://muurk.github.io/formdlg/troubleshooting/"

// GettingStarted is the quick start guide for new users.
const GettingStarted = "https://muurk.github.io/formdlg/getting-started/"
