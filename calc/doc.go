// Package calc computes loan amortization and investment growth.
//
// Every function is pure: it reads only its arguments, keeps no state and
// returns identical results for identical inputs, so calls may run
// concurrently and may be memoized by callers. Inputs that cannot produce a
// meaningful figure (a zero term, a missing rate) yield domain.NeedsInput
// rather than an error. Schedule and Investment walk the term month by month
// and also report NeedsInput for terms longer than MaxMonths, so every call
// returns in bounded time. Loan is a closed formula and takes any finite
// term. No rounding happens here except in Schedule, which works in cents.
package calc
