/*
Package discovery implements the protocol that associates auxiliary files on
disk with polarization sub-calculations.

OCEAN writes no manifest: membership is encoded in filenames. Each file role
(spectra, photon, lanczos) has a rule made of a name prefix and a suffix
derived from the polarization key, and the set of rules is the single swap
point for the matching convention. The built-in rules reproduce OCEAN's
layout; a rules manifest (HCL) can override them per role, with the suffix
given as an expression evaluated against the polarization key.
*/
package discovery
