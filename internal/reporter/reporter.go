package reporter

// Reporter defines the interface for progress reporting.
type Reporter interface {
	EncoderDetected(summary EncoderSummary)
	BatchStarted(info BatchStartInfo)
	FileStarted(fctx FileContext)
	SourceInfo(summary SourceSummary)
	PlanSummary(summary PlanSummary)
	ConversionStarted(durationSecs float64)
	ConversionProgress(progress ProgressSnapshot)
	FileComplete(outcome FileOutcome)
	FileSkipped(filename, reason string)
	Warning(message string)
	Error(err ReporterError)
	BatchComplete(summary BatchSummary)
}

// NullReporter is a no-op reporter that discards all updates.
type NullReporter struct{}

func (NullReporter) EncoderDetected(EncoderSummary)      {}
func (NullReporter) BatchStarted(BatchStartInfo)         {}
func (NullReporter) FileStarted(FileContext)             {}
func (NullReporter) SourceInfo(SourceSummary)            {}
func (NullReporter) PlanSummary(PlanSummary)             {}
func (NullReporter) ConversionStarted(float64)           {}
func (NullReporter) ConversionProgress(ProgressSnapshot) {}
func (NullReporter) FileComplete(FileOutcome)            {}
func (NullReporter) FileSkipped(string, string)          {}
func (NullReporter) Warning(string)                      {}
func (NullReporter) Error(ReporterError)                 {}
func (NullReporter) BatchComplete(BatchSummary)          {}
