// Package sample provides data structures for paired observations with covariates.
//
// This package includes the Sample type holding paired observations
// (X1, X2) together with their conditioning covariates Z, along with
// functions for loading samples from CSV files.
//
// # Creating a Sample
//
// Create a sample with a single conditioning covariate:
//
//	smp, err := sample.NewUnivariate(x1, x2, z)
//
// Or with a multivariate covariate matrix (n rows, d columns):
//
//	z := mat.NewDense(n, d, data)
//	smp, err := sample.New(x1, x2, z)
//
// # Loading from CSV
//
// Load a sample from a CSV file:
//
//	opts := sample.DefaultCSVOptions()
//	opts.X1Column = "rainfall"
//	opts.X2Column = "runoff"
//	opts.CovariateColumns = []string{"temperature"}
//	smp, err := sample.LoadCSV("data.csv", opts)
//
// # Subsetting
//
// Restrict a sample to a set of observation indices (used by
// cross-validation folds):
//
//	train := smp.Subset(trainIndices)
//
// # Descriptive Statistics
//
// Summarize the variables:
//
//	for _, s := range smp.Summary() {
//	    fmt.Printf("%s: mean=%.3f std=%.3f\n", s.Name, s.Mean, s.Std)
//	}
package sample
